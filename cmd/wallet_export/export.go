package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/big"

	"wallet_export/internal/app/port"
	"wallet_export/internal/app/provider"
	"wallet_export/internal/app/service"
	"wallet_export/internal/domain/entity"
	"wallet_export/internal/infrastructure/configloader"
	"wallet_export/internal/infrastructure/snapshotsink"
)

type exportFlags struct {
	address    string
	sourceFile string
	output     string
	silent     bool
	configPath string
}

func parseExportFlags(args []string, stderr io.Writer) (exportFlags, error) {
	var f exportFlags
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&f.address, "address", "", "wallet address (ronin: or 0x prefixed)")
	fs.StringVar(&f.sourceFile, "source-file", "", "file with one wallet address per line")
	fs.StringVar(&f.output, "output", snapshotsink.ModeStdout, "where to write snapshots: stdout or file")
	fs.BoolVar(&f.silent, "silent", false, "only log errors and skip the summary")
	fs.StringVar(&f.configPath, "config", defaultConfigPath(), "path to the YAML config file")
	if err := fs.Parse(args); err != nil {
		return f, err
	}
	if f.address != "" && f.sourceFile != "" {
		return f, errors.New("--address and --source-file are mutually exclusive")
	}
	return f, nil
}

func runExport(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	flags, err := parseExportFlags(args, stderr)
	if err != nil {
		return err
	}

	cfg, err := configloader.Load(flags.configPath)
	if err != nil {
		return err
	}
	level := cfg.Logging.Level
	if flags.silent {
		level = "error"
	}
	zapLogger, err := setupLogging(cfg, level)
	if err != nil {
		return err
	}
	defer func() { _ = zapLogger.Sync() }()

	app, err := newApplication(cfg, zapLogger)
	if err != nil {
		return err
	}

	var wallets port.WalletProvider
	switch {
	case flags.sourceFile != "":
		wallets = provider.NewFileWalletProvider(flags.sourceFile, app.appLogger)
	case flags.address != "":
		wallets = provider.NewAddressWalletProvider(flags.address)
	default:
		wallets = provider.NewPromptWalletProvider(stdin, stderr)
	}
	list, err := wallets.GetWallets()
	if err != nil {
		return err
	}
	if len(list) == 0 {
		return errors.New("no wallet addresses to export")
	}

	sink, err := snapshotsink.New(flags.output, stdout, cfg.Output.Directory)
	if err != nil {
		return err
	}
	if !flags.silent {
		sink = &summarySink{next: sink, out: stderr}
	}

	exporter := service.NewExporter(app.builder, app.appLogger, cfg.Performance.MaxConcurrentWallets)
	written, failures := exporter.ExportAll(ctx, list, sink)

	for _, f := range failures {
		fmt.Fprintf(stderr, "failed %s (%s): %s\n", f.WalletAddress, f.Stage, f.Message)
	}
	if written == 0 {
		if len(list) == 1 {
			return fmt.Errorf("export of %s failed", list[0].Address)
		}
		return fmt.Errorf("all %d wallet exports failed", len(list))
	}
	if !flags.silent && len(list) > 1 {
		fmt.Fprintf(stderr, "exported %d of %d wallets\n", written, len(list))
	}
	return nil
}

// summarySink prints the human-readable totals of each snapshot after writing it.
type summarySink struct {
	next port.SnapshotSink
	out  io.Writer
}

func (s *summarySink) Write(snapshot *entity.WalletSnapshot) error {
	if err := s.next.Write(snapshot); err != nil {
		return err
	}
	fmt.Fprintln(s.out, formatSummary(snapshot))
	return nil
}

func formatSummary(snapshot *entity.WalletSnapshot) string {
	sum := snapshot.Summary
	return fmt.Sprintf("%s: %d fungible, %d axies, %d lands, %d items, runes %d kinds / %s total, charms %d kinds / %s total",
		snapshot.Wallet, sum.FungibleTokens, sum.Axies, sum.Lands, sum.Items,
		sum.RuneKinds, bigString(sum.RuneTotal), sum.CharmKinds, bigString(sum.CharmTotal))
}

func bigString(v *big.Int) string {
	if v == nil {
		return "0"
	}
	return v.String()
}
