package main

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/DipperMason/desk-calculator/internal/keypad"
	"github.com/DipperMason/desk-calculator/internal/logger"
)

var keysCmd = &cobra.Command{
	Use:   "keys [key...]",
	Short: "Replay a key sequence and print the display after each key",
	Long: `Replay presses button by button on a fresh calculator. Keys are button
labels (0-9 . ± + - × ÷ ^ √ ∛ sin cos tan π = ⌫ C CE DRG) or keyboard
aliases (* / p r n a enter esc backspace). Without arguments keys are read
from stdin, separated by whitespace.

  calculator keys 2 + 3 + 4 =`,
	RunE: runKeys,
}

func runKeys(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	defer logger.Global().Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	store := openStore(cfg)
	if store != nil {
		defer store.Close()
	}
	engine, err := newEngine(ctx, cmd, cfg, store)
	if err != nil {
		return err
	}

	tokens := args
	if len(tokens) == 0 {
		if tokens, err = readTokens(cmd.InOrStdin()); err != nil {
			return err
		}
	}
	return replay(cmd.OutOrStdout(), keypad.NewPanel(engine, nil), tokens)
}

func readTokens(r io.Reader) ([]string, error) {
	var tokens []string
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		tokens = append(tokens, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read keys: %w", err)
	}
	return tokens, nil
}

// replay presses every token on panel and writes one line per key:
// the key, the expression line and the display.
func replay(w io.Writer, panel *keypad.Panel, tokens []string) error {
	for _, tok := range tokens {
		k, err := keypad.ParseKey(tok)
		if err != nil {
			return err
		}
		panel.Press(k)

		fmt.Fprintf(w, "%-4s %-30s | %s\n", k.Label(), panel.Trace(), panel.Display())
		if alert := panel.Alert(); alert != "" {
			fmt.Fprintf(w, "     ! %s\n", alert)
		}
	}
	return nil
}
