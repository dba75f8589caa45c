// Copyright (c) 2025 Neomantra Corp

package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/klauspost/compress/zstd"
	"github.com/relvacode/iso8601"
	segjson "github.com/segmentio/encoding/json"
	"github.com/spf13/cobra"

	itchlob "github.com/NimbleMarkets/itch-lob"
	"github.com/NimbleMarkets/itch-lob/itch41"
	"github.com/NimbleMarkets/itch-lob/itch50"
)

///////////////////////////////////////////////////////////////////////////////

var (
	format     string // "itch50" or "itch41"
	forceZstd  bool
	instrument string
	bookDate   string
)

func requireNoError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err.Error())
		os.Exit(1)
	}
}

func requireNoErrorWithoutPrint(err error) {
	if err != nil {
		os.Exit(1)
	}
}

///////////////////////////////////////////////////////////////////////////////

func main() {
	cobra.OnInitialize()

	rootCmd.PersistentFlags().StringVarP(&format, "format", "f", "itch50", `Message format: "itch50" or "itch41"`)
	rootCmd.PersistentFlags().BoolVarP(&forceZstd, "zstd", "z", false, "Input is zstd (useful for handling zstd on stdin)")

	rootCmd.AddCommand(metadataCmd)

	rootCmd.AddCommand(replayCmd)
	replayCmd.Flags().StringVarP(&instrument, "instrument", "i", "", "Instrument symbol to replay")
	replayCmd.Flags().StringVarP(&bookDate, "book-date", "d", "", "Book date (ISO8601), e.g. 2026-07-30")
	replayCmd.MarkFlagRequired("instrument")
	replayCmd.MarkFlagRequired("book-date")

	rootCmd.AddCommand(jsonCmd)

	err := rootCmd.Execute()
	requireNoErrorWithoutPrint(err)
}

///////////////////////////////////////////////////////////////////////////////

var rootCmd = &cobra.Command{
	Use:   "itch-lob-file",
	Short: "itch-lob-file replays NASDAQ ITCH message files into a limit order book",
	Long:  "itch-lob-file replays NASDAQ ITCH message files into a limit order book",
}

///////////////////////////////////////////////////////////////////////////////

// openStream opens sourceFile ("-" for stdin), transparently decompressing
// it (or zstd-decoding it when --zstd is set), and returns the raw byte
// stream plus a closer to defer. Callers wrap the result in
// itchlob.NewFramedReader (or a format Scanner, which does so internally).
func openStream(sourceFile string) (io.Reader, func(), error) {
	if forceZstd {
		f := os.Stdin
		if sourceFile != "-" {
			var err error
			if f, err = os.Open(sourceFile); err != nil {
				return nil, nil, err
			}
		}
		zr, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, nil, err
		}
		return zr, func() { zr.Close(); f.Close() }, nil
	}
	r, closer, err := itchlob.OpenCompressedReader(sourceFile)
	if err != nil {
		return nil, nil, err
	}
	return r, func() { closer.Close() }, nil
}

///////////////////////////////////////////////////////////////////////////////

type fileSummary struct {
	File    string         `json:"file"`
	Format  string         `json:"format"`
	Frames  int            `json:"frames"`
	Bytes   int            `json:"bytes"`
	Opcodes map[string]int `json:"opcodes"`
}

var metadataCmd = &cobra.Command{
	Use:   "metadata file...",
	Short: "Prints each file's frame/opcode counts as JSON",
	Long:  "Prints each file's frame/opcode counts as JSON",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		for _, sourceFile := range args {
			if err := printMetadata(sourceFile); err != nil {
				fmt.Fprintf(os.Stderr, "error: reading %s: %s\n", sourceFile, err.Error())
			}
		}
	},
}

func printMetadata(sourceFile string) error {
	stream, closer, err := openStream(sourceFile)
	if err != nil {
		return err
	}
	defer closer()
	reader := itchlob.NewFramedReader(stream)

	summary := fileSummary{File: sourceFile, Format: format, Opcodes: make(map[string]int)}
	for reader.Next() {
		summary.Frames++
		summary.Bytes += len(reader.Payload())
		summary.Opcodes[string(rune(reader.Opcode()))]++
	}
	if err := reader.Error(); err != nil && err != io.EOF {
		return err
	}

	jstr, err := segjson.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}
	fmt.Printf("%s\n", jstr)
	return nil
}

///////////////////////////////////////////////////////////////////////////////

var replayCmd = &cobra.Command{
	Use:   "replay file...",
	Short: "Replays each file into a limit order book and prints a summary",
	Long:  "Replays each file into a limit order book and prints a summary",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		date, err := iso8601.ParseString(bookDate)
		requireNoError(err)

		for _, sourceFile := range args {
			if err := replayFile(sourceFile, date); err != nil {
				fmt.Fprintf(os.Stderr, "error: replaying %s: %s\n", sourceFile, err.Error())
			}
		}
	},
}

func replayFile(sourceFile string, date time.Time) error {
	stream, closer, err := openStream(sourceFile)
	if err != nil {
		return err
	}
	defer closer()

	messageCount := 0
	var lob *itchlob.LimitOrderBook
	var status itchlob.TradingStatus

	switch format {
	case "itch41":
		proc := itch41.NewMarketProcessor(instrument, date)
		scanner := itch41.NewScanner(stream)
		for scanner.Next() {
			messageCount++
			if err := scanner.Visit(proc); err != nil {
				return err
			}
		}
		if err := proc.ProcessingDone(); err != nil {
			return err
		}
		if err := scanner.Error(); err != nil && err != io.EOF {
			return err
		}
		lob, status = proc.CurrentLOB(), proc.TradingStatus()
	default:
		proc := itch50.NewMarketProcessor(instrument, date)
		scanner := itch50.NewScanner(stream)
		for scanner.Next() {
			messageCount++
			if err := scanner.Visit(proc); err != nil {
				return err
			}
		}
		if err := proc.ProcessingDone(); err != nil {
			return err
		}
		if err := scanner.Error(); err != nil && err != io.EOF {
			return err
		}
		lob, status = proc.CurrentLOB(), proc.TradingStatus()
	}

	fmt.Printf("%s: %s messages replayed, trading status %s\n", sourceFile, humanize.Comma(int64(messageCount)), status)
	if lob != nil {
		if bid, err := lob.BestBid(); err == nil {
			fmt.Printf("  best bid: %.4f\n", bid)
		}
		if ask, err := lob.BestAsk(); err == nil {
			fmt.Printf("  best ask: %.4f\n", ask)
		}
	}
	return nil
}

///////////////////////////////////////////////////////////////////////////////

var jsonCmd = &cobra.Command{
	Use:   "json file...",
	Short: "Prints each file's decoded messages as JSON, one per line",
	Long:  "Prints each file's decoded messages as JSON, one per line",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		for _, sourceFile := range args {
			if err := printJSON(sourceFile); err != nil {
				fmt.Fprintf(os.Stderr, "error: reading %s: %s\n", sourceFile, err.Error())
			}
		}
	},
}

func printJSON(sourceFile string) error {
	stream, closer, err := openStream(sourceFile)
	if err != nil {
		return err
	}
	defer closer()
	reader := itchlob.NewFramedReader(stream)

	for reader.Next() {
		payload := reader.Payload()
		var record any
		if format == "itch41" {
			record, err = itch41.Decode(payload)
		} else {
			record, err = itch50.Decode(payload)
		}
		if err != nil {
			return err
		}
		jstr, err := segjson.Marshal(record)
		if err != nil {
			return fmt.Errorf("failed to marshal record: %w", err)
		}
		fmt.Printf("%s\n", jstr)
	}
	if err := reader.Error(); err != nil && err != io.EOF {
		return err
	}
	return nil
}
