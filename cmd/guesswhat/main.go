package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/decred/slog"
	"github.com/joho/godotenv"

	"github.com/chevoisiatesalvati/guess-what/internal/config"
	"github.com/chevoisiatesalvati/guess-what/internal/logging"
	"github.com/chevoisiatesalvati/guess-what/internal/models"
	"github.com/chevoisiatesalvati/guess-what/internal/network"
	"github.com/chevoisiatesalvati/guess-what/internal/services"
	"github.com/chevoisiatesalvati/guess-what/internal/sharing"
)

type command struct {
	usage string
	run   func(ctx context.Context, a *app, args []string) error
}

var commands = map[string]command{
	"play":         {"play [-backend remote|local]", runPlay},
	"stats":        {"stats [address]", runStats},
	"hash":         {"hash <word>", runHash},
	"create-game":  {"create-game <top> <middle> <bottom> <entry fee>", runCreateGame},
	"create-games": {"create-games [-n N] [-fee ETH] [-pause 2s] [-fund=true]", runCreateGames},
	"admins":       {"admins list|add <address>|remove <address>", runAdmins},
	"treasury":     {"treasury balance|fund [ETH]|withdraw [ETH]|set-multiplier [N]|set-fee [percent]", runTreasury},
}

var errUsage = errors.New("usage")

// app holds what subcommands share. The chain connection is opened on
// first use so offline commands work without an RPC endpoint.
type app struct {
	cfg  *config.Config
	logs *logging.LogBackend
	log  slog.Logger
	in   io.Reader
	out  io.Writer

	net      network.Network
	contract *services.ContractService
	admin    *services.AdminService
	sharing  *sharing.Builder
	closers  []func()
}

func main() {
	os.Exit(run())
}

func run() int {
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() == 0 {
		usage()
		return 2
	}

	cmd, ok := commands[flag.Arg(0)]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown command %q\n", flag.Arg(0))
		usage()
		return 2
	}

	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		return 1
	}

	logs, ok := logging.NewLogBackend(os.Stderr, cfg.LogLevel)
	a := &app{
		cfg:     cfg,
		logs:    logs,
		log:     logs.Logger(logging.SubsystemGame),
		in:      os.Stdin,
		out:     os.Stdout,
		sharing: sharing.New(cfg.AppURL),
	}
	defer a.close()
	if !ok {
		a.log.Warnf("Unknown LOG_LEVEL %q, using info", cfg.LogLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.run(ctx, a, flag.Args()[1:]); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintf(os.Stderr, "usage: guesswhat %s\n", cmd.usage)
			return 2
		}
		fmt.Fprintf(os.Stderr, "guesswhat %s: %v\n", flag.Arg(0), err)
		return 1
	}
	return 0
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: guesswhat <command> [arguments]")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "commands:")

	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(os.Stderr, "  %s\n", commands[name].usage)
	}
}

func (a *app) chain(ctx context.Context) (*services.ContractService, error) {
	if a.contract != nil {
		return a.contract, nil
	}

	net, err := services.ResolveNetwork(a.cfg)
	if err != nil {
		return nil, err
	}
	client, eth, err := services.DialContract(ctx, a.cfg, net, a.logs.Logger(logging.SubsystemContract))
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, eth.Close)

	a.net = net
	a.contract = services.NewContractService(client, a.logs.Logger(logging.SubsystemContract))
	a.admin = services.NewAdminService(a.contract, nil, a.logs.Logger(logging.SubsystemAdmin))
	a.log.Debugf("Connected to %s, contract %s", net.Name, net.ContractAddress.Hex())
	return a.contract, nil
}

// access resolves the roles of the configured operator key.
func (a *app) access(ctx context.Context) (*models.AdminAccess, error) {
	c, err := a.chain(ctx)
	if err != nil {
		return nil, err
	}
	addr, err := c.WalletAddress(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: set PRIVATE_KEY", err)
	}
	return a.admin.ResolveAccess(ctx, addr), nil
}

func (a *app) resolver() *services.PrizeResolver {
	r := &services.PrizeResolver{
		DisplayFeePercent: a.cfg.DisplayPlatformFeePercent,
		Sharing:           a.sharing,
		Log:               a.logs.Logger(logging.SubsystemGame),
	}
	if a.contract != nil {
		r.Fees = a.contract
	}
	return r
}

func (a *app) printf(format string, args ...interface{}) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}
