package main

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/chevoisiatesalvati/guess-what/internal/models"
	"github.com/chevoisiatesalvati/guess-what/internal/units"
	"github.com/chevoisiatesalvati/guess-what/internal/words"
)

// Defaults of the treasury page.
const (
	defaultFundAmount     = "0.001"
	defaultWithdrawAmount = "0.001"
	defaultMultiplier     = 10
	defaultPlatformFee    = 10

	defaultScriptEntryFee = "0.0001"
	defaultScriptPause    = 2 * time.Second
)

func runHash(_ context.Context, a *app, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	a.printf("%s\t%s\t%d\n", words.Normalize(args[0]), words.Hash(args[0]).Hex(), words.Length(args[0]))
	return nil
}

func runStats(ctx context.Context, a *app, args []string) error {
	var address string
	switch len(args) {
	case 0:
		c, err := a.chain(ctx)
		if err != nil {
			return err
		}
		addr, err := c.WalletAddress(ctx)
		if err != nil {
			return fmt.Errorf("%w: pass an address or set PRIVATE_KEY", err)
		}
		address = addr.Hex()
	case 1:
		address = args[0]
	default:
		return errUsage
	}
	return showStats(ctx, a, address)
}

func showStats(ctx context.Context, a *app, address string) error {
	addr, err := models.ParseAddress(address)
	if err != nil {
		return err
	}
	c, err := a.chain(ctx)
	if err != nil {
		return err
	}

	raw, ok := c.LookupPlayerStats(ctx, addr)
	if !ok {
		return fmt.Errorf("failed to load stats: %s", c.State().Error)
	}
	stats := models.NewPlayerStats(addr.Hex(), raw, time.Now())

	a.printf("Player          %s\n", stats.Address)
	a.printf("Games played    %d\n", stats.GamesPlayed)
	a.printf("Guesses played  %d\n", stats.GuessesPlayed)
	a.printf("Correct guesses %d\n", stats.CorrectGuesses)
	a.printf("Total winnings  %s ETH\n", stats.TotalWinnings)
	a.printf("Accuracy        %.2f%%\n", stats.Accuracy)
	return nil
}

func runCreateGame(ctx context.Context, a *app, args []string) error {
	if len(args) != 4 {
		return errUsage
	}
	req := models.CreateGameRequest{TopWord: args[0], MiddleWord: args[1], BottomWord: args[2], EntryFee: args[3]}
	if err := req.Validate(); err != nil {
		return err
	}

	access, err := a.access(ctx)
	if err != nil {
		return err
	}
	id, err := a.admin.CreateGame(ctx, access, req)
	if err != nil {
		return err
	}

	a.printf("Created game %d: %s / %s / %s for %s ETH\n",
		id, req.TopWord, strings.Repeat("•", words.Length(req.MiddleWord)), req.BottomWord, req.EntryFee)
	return nil
}

// runCreateGames creates games from the built-in combinations, topping up
// the treasury first whenever it cannot cover a game's base prize.
func runCreateGames(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("create-games", flag.ContinueOnError)
	n := fs.Int("n", len(words.Combinations), "number of games to create")
	fee := fs.String("fee", defaultScriptEntryFee, "entry fee in ETH")
	pause := fs.Duration("pause", defaultScriptPause, "pause between games")
	fund := fs.Bool("fund", true, "fund the treasury when it runs low")
	if err := fs.Parse(args); err != nil || fs.NArg() != 0 || *n <= 0 {
		return errUsage
	}

	entryFee, err := units.ParseEther(*fee)
	if err != nil {
		return err
	}
	access, err := a.access(ctx)
	if err != nil {
		return err
	}
	if !access.CanCreateGames {
		return fmt.Errorf("%s is not an admin", access.Address)
	}

	var created []uint64
	for i := 0; i < *n; i++ {
		combo := words.Combinations[i%len(words.Combinations)]

		funded, err := a.admin.EnsureTreasury(ctx, access, entryFee, *fund)
		if err != nil {
			return err
		}
		if funded {
			a.printf("Funded treasury, balance now %s ETH\n", a.contract.GetTreasuryBalance(ctx))
		}

		id, err := a.admin.CreateGame(ctx, access, models.CreateGameRequest{
			TopWord:    combo.Top,
			MiddleWord: combo.Middle,
			BottomWord: combo.Bottom,
			EntryFee:   *fee,
		})
		if err != nil {
			return fmt.Errorf("game %d of %d (%s/%s): %w", i+1, *n, combo.Top, combo.Bottom, err)
		}
		created = append(created, id)
		a.printf("Created game %d: %s / ? / %s\n", id, combo.Top, combo.Bottom)

		if i < *n-1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(*pause):
			}
		}
	}

	ids := make([]string, len(created))
	for i, id := range created {
		ids[i] = strconv.FormatUint(id, 10)
	}
	a.printf("Created %d games: %s\n", len(created), strings.Join(ids, ", "))
	return nil
}

func runAdmins(ctx context.Context, a *app, args []string) error {
	if len(args) == 0 {
		return errUsage
	}

	access, err := a.access(ctx)
	if err != nil && args[0] != "list" {
		return err
	}

	var set *models.AdminSet
	switch {
	case args[0] == "list" && len(args) == 1:
		if _, err := a.chain(ctx); err != nil {
			return err
		}
		set = a.admin.Admins(ctx)
	case args[0] == "add" && len(args) == 2:
		if set, err = a.admin.AddAdmin(ctx, access, args[1]); err != nil {
			return err
		}
		a.printf("Added %s\n", args[1])
	case args[0] == "remove" && len(args) == 2:
		if set, err = a.admin.RemoveAdmin(ctx, access, args[1]); err != nil {
			return err
		}
		a.printf("Removed %s\n", args[1])
	default:
		return errUsage
	}

	a.printf("Owner: %s\n", a.addressLink(set.Owner))
	a.printf("Admins (%d):\n", set.Count)
	for _, admin := range set.Admins {
		a.printf("  %s\n", a.addressLink(admin))
	}
	return nil
}

func runTreasury(ctx context.Context, a *app, args []string) error {
	if len(args) == 0 || len(args) > 2 {
		return errUsage
	}
	arg := func(def string) string {
		if len(args) == 2 {
			return args[1]
		}
		return def
	}

	if args[0] == "balance" {
		if _, err := a.chain(ctx); err != nil {
			return err
		}
		a.printOverview(a.admin.Treasury(ctx))
		return nil
	}

	access, err := a.access(ctx)
	if err != nil {
		return err
	}

	switch args[0] {
	case "fund":
		balance, err := a.admin.FundTreasury(ctx, access, arg(defaultFundAmount))
		if err != nil {
			return err
		}
		a.printf("Treasury balance: %s ETH\n", balance)
	case "withdraw":
		balance, err := a.admin.WithdrawFromTreasury(ctx, access, arg(defaultWithdrawAmount))
		if err != nil {
			return err
		}
		a.printf("Treasury balance: %s ETH\n", balance)
	case "set-multiplier":
		n, err := strconv.ParseUint(arg(strconv.Itoa(defaultMultiplier)), 10, 64)
		if err != nil {
			return fmt.Errorf("invalid multiplier: %w", err)
		}
		overview, err := a.admin.SetPrizeMultiplier(ctx, access, n)
		if err != nil {
			return err
		}
		a.printOverview(overview)
	case "set-fee":
		n, err := strconv.ParseUint(arg(strconv.Itoa(defaultPlatformFee)), 10, 64)
		if err != nil {
			return fmt.Errorf("invalid fee: %w", err)
		}
		overview, err := a.admin.SetPlatformFee(ctx, access, n)
		if err != nil {
			return err
		}
		a.printOverview(overview)
	default:
		return errUsage
	}
	return nil
}

func (a *app) addressLink(address string) string {
	addr, err := models.ParseAddress(address)
	if err != nil {
		return address
	}
	return fmt.Sprintf("%s  %s", addr.Hex(), a.net.AddressURL(addr))
}

func (a *app) printOverview(o *models.TreasuryOverview) {
	a.printf("Balance           %s ETH\n", o.Balance)
	a.printf("Prize multiplier  %dx\n", o.PrizeMultiplier)
	a.printf("Platform fee      %d%%\n", o.PlatformFeePercent)
}
