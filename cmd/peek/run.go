package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"peek/internal/config"
	"peek/internal/head"
)

func runRoot(cmd *cobra.Command, args []string) error {
	// Числовые флаги читаем как строки, чтобы сообщение об ошибке
	// содержало исходный токен.
	linesTok, err := cmd.Flags().GetString("lines")
	if err != nil {
		return fmt.Errorf("failed to get lines flag: %w", err)
	}
	if !cmd.Flags().Changed("lines") {
		linesTok = ""
	}
	bytesTok, err := cmd.Flags().GetString("bytes")
	if err != nil {
		return fmt.Errorf("failed to get bytes flag: %w", err)
	}
	quiet, err := cmd.Flags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return fmt.Errorf("failed to get verbose flag: %w", err)
	}
	colorFlag, err := cmd.Flags().GetString("color")
	if err != nil {
		return fmt.Errorf("failed to get color flag: %w", err)
	}
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("failed to get config flag: %w", err)
	}

	var defaults config.Defaults
	if path, ok := config.ResolveDefaultsPath(configPath); ok {
		d, found, err := config.LoadDefaults(path)
		if err != nil {
			return err
		}
		if found {
			defaults = d
		}
	}

	// The flag wins over the defaults file; both default to auto.
	if colorFlag == "" {
		colorFlag = defaults.Color
	}
	mode, err := readColorMode(colorFlag)
	if err != nil {
		return err
	}

	cfg, err := config.Build(config.Input{
		Sources:      args,
		LinesToken:   linesTok,
		BytesToken:   bytesTok,
		DefaultLines: defaults.Lines,
		Quiet:        quiet,
		Verbose:      verbose,
	})
	if err != nil {
		return err
	}

	printer := head.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), shouldColor(mode))
	return printer.Run(cfg)
}
