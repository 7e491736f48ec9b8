package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"github.com/chevoisiatesalvati/guess-what/internal/config"
	"github.com/chevoisiatesalvati/guess-what/internal/logging"
	"github.com/chevoisiatesalvati/guess-what/internal/models"
	"github.com/chevoisiatesalvati/guess-what/internal/services"
	"github.com/chevoisiatesalvati/guess-what/internal/units"
)

const playHelp = `Type a guess and press enter.
  :next   skip to another game
  :stats  show your stats
  :reset  drop the current round and start a fresh one (local backend)
  :quit   leave
`

func runPlay(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("play", flag.ContinueOnError)
	backendName := fs.String("backend", a.cfg.GameBackend, "game backend: remote or local")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	var (
		backend services.GameBackend
		local   *services.LocalBackend
		player  string
	)
	switch *backendName {
	case config.BackendLocal:
		entryFee, err := units.ParseEther(a.cfg.LocalEntryFee)
		if err != nil {
			return err
		}
		local = services.NewLocalBackend(services.LocalBackendConfig{
			EntryFee:  entryFee,
			TimeLimit: a.cfg.LocalTimeLimit,
			Log:       a.logs.Logger(logging.SubsystemGame),
		})
		backend = local
	case config.BackendRemote:
		c, err := a.chain(ctx)
		if err != nil {
			return err
		}
		if addr, err := c.WalletAddress(ctx); err == nil {
			player = addr.Hex()
		}
		backend = services.NewRemoteBackend(c, a.logs.Logger(logging.SubsystemGame))
	default:
		return errUsage
	}

	view := services.NewGameView(services.GameViewConfig{
		Backend:  backend,
		Resolver: a.resolver(),
		Player:   player,
		Log:      a.logs.Logger(logging.SubsystemGame),
	})

	if err := view.Load(ctx); err != nil {
		return err
	}
	a.printf("%s\n", playHelp)
	a.render(view.Snapshot())

	scanner := bufio.NewScanner(a.in)
	for {
		snap := view.Snapshot()
		switch snap.State {
		case services.ViewConnectWallet:
			a.printf("Connect a wallet to play: set PRIVATE_KEY or use -backend local.\n")
			return nil
		case services.ViewNoGames:
			a.printf("No active games right now. Come back later!\n")
			return nil
		}

		a.printf("> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())

		switch line {
		case "":
			continue
		case ":quit", ":q":
			return nil
		case ":next":
			if err := view.Next(ctx); err != nil {
				a.printf("%v\n", err)
			}
			a.render(view.Snapshot())
			continue
		case ":stats":
			a.printStats(ctx, local, player)
			continue
		case ":reset":
			if local == nil {
				a.printf("Only the local backend can be reset.\n")
				continue
			}
			local.Reset()
			if err := view.Next(ctx); err != nil {
				a.printf("%v\n", err)
			}
			a.render(view.Snapshot())
			continue
		}

		view.SetInput(line)
		result, err := view.Submit(ctx)
		if err != nil {
			a.printf("%v\n", err)
			if errors.Is(err, services.ErrGameExpired) || errors.Is(err, services.ErrGameNotActive) {
				a.printf("Type :next for another game.\n")
			}
			continue
		}

		if !result.Correct {
			a.printf("%s Pot is now %s ETH.\n", result.Message, result.TotalPrize)
			a.render(view.Snapshot())
			continue
		}

		a.printWin(result)
		if err := view.Next(ctx); err != nil {
			return err
		}
		a.render(view.Snapshot())
	}
}

func (a *app) render(snap services.ViewSnapshot) {
	if snap.Game == nil {
		return
	}
	g := snap.Game

	a.printf("\nGame #%s  (entry %s ETH, prize %s ETH)\n", g.ID, g.EntryFee, g.TotalPrize)
	a.printf("  %s\n  %s\n  %s\n", strings.ToUpper(g.TopWord), strings.ToUpper(snap.Board), strings.ToUpper(g.BottomWord))
	if g.Hint != "" {
		a.printf("  hint: %s\n", g.Hint)
	}
	if g.Deadline != nil {
		a.printf("  ends at %s\n", g.Deadline.Format("15:04:05"))
	}
}

func (a *app) printWin(result *models.GuessResult) {
	a.printf("\n%s\n", result.Message)
	a.printf("Prize: %s ETH", result.DisplayedPrize)
	if result.BonusPoints > 0 {
		a.printf(" + %d bonus points", result.BonusPoints)
	}
	a.printf("\n")
	if result.FeeMismatch && result.ContractFeePercent != nil {
		a.printf("Note: displayed fee %d%% differs from the contract fee %d%%.\n",
			result.DisplayFeePercent, *result.ContractFeePercent)
	}
	if result.TxHash != "" {
		a.printf("Transaction: %s\n", a.net.TxURL(common.HexToHash(result.TxHash)))
	}
	if result.Share != nil {
		a.printf("Share: %s\n", result.Share.ComposeURL)
	}
}

func (a *app) printStats(ctx context.Context, local *services.LocalBackend, player string) {
	if local != nil {
		s := local.Stats()
		a.printf("Games %d, correct %d, winnings %s ETH, accuracy %.1f%%, average time %v\n",
			s.GamesPlayed, s.CorrectGuesses, s.TotalWinnings, s.Accuracy, s.AverageTime)
		if round, ok := local.Current(); ok {
			a.printf("Playing %s, pot %s ETH\n", round.ID, units.FormatEther(round.TotalPrize))
		}
		return
	}
	if player == "" {
		a.printf("No wallet connected.\n")
		return
	}
	if err := showStats(ctx, a, player); err != nil {
		a.printf("%v\n", err)
	}
}
