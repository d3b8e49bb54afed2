package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/maddymakesgames/celeste-go/maps"
	"github.com/maddymakesgames/celeste-go/maps/elements"
)

func main() {
	var (
		mapFile     = pflag.StringP("map", "m", "", "Path to a map .bin file")
		dump        = pflag.Bool("dump", false, "Print the element tree and exit")
		verify      = pflag.Bool("verify", false, "Re-encode the map and check the bytes match")
		outFile     = pflag.StringP("out", "o", "", "Re-encode the map to this path")
		interactive = pflag.BoolP("interactive", "i", false, "Interactive mode with TUI")
		verbose     = pflag.BoolP("verbose", "v", false, "Enable debug logging")
	)
	pflag.Parse()

	if *mapFile == "" && pflag.NArg() > 0 {
		*mapFile = pflag.Arg(0)
	}
	if *mapFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: mapbin <file.bin> [--dump] [--verify] [-o out.bin]")
		fmt.Fprintln(os.Stderr, "       mapbin <file.bin> -i  (interactive mode)")
		os.Exit(1)
	}

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err == nil {
			maps.SetLogger(logger)
			defer logger.Sync()
		}
	}

	if *interactive {
		if err := runInteractive(*mapFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*mapFile, *dump, *verify, *outFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(mapFile string, dump, verify bool, outFile string) error {
	data, err := os.ReadFile(mapFile)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	mgr, err := maps.NewManager(data, elements.DefaultRegistry())
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	m := mgr.Map()

	elems, attrs := countTree(m.Root)
	fmt.Printf("Map: %s\n", m.Name)
	fmt.Printf("Lookup strings: %d\n", m.Lookup.Len())
	fmt.Printf("Elements: %d\n", elems)
	fmt.Printf("Attributes: %d\n", attrs)

	if root, err := maps.ParseRoot[elements.MapRoot](mgr); err != nil {
		fmt.Printf("Typed parse: failed (%v)\n", err)
	} else {
		fmt.Printf("Levels: %d\n", len(root.Levels.Levels))
	}

	if dump {
		fmt.Println(m.Dump())
	}

	if verify {
		// Re-decode without resolving so the table and indices stay
		// exactly as stored, then the bytes must come back unchanged.
		raw, err := maps.Decode(data)
		if err != nil {
			return fmt.Errorf("verify decode: %w", err)
		}
		encoded, err := raw.Encode()
		if err != nil {
			return fmt.Errorf("verify encode: %w", err)
		}
		if !bytes.Equal(encoded, data) {
			return fmt.Errorf("round trip differs: %d bytes in, %d bytes out", len(data), len(encoded))
		}
		fmt.Println("Round trip: byte-identical")
	}

	if outFile != "" {
		m.UnresolveNames()
		encoded, err := m.Encode()
		if err != nil {
			return fmt.Errorf("encode: %w", err)
		}
		if err := os.WriteFile(outFile, encoded, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", outFile, err)
		}
		fmt.Printf("Wrote %d bytes to %s\n", len(encoded), outFile)
	}

	return nil
}

func countTree(el *maps.RawElement) (elems, attrs int) {
	elems = 1
	attrs = len(el.Attributes)
	for _, c := range el.Children {
		ce, ca := countTree(c)
		elems += ce
		attrs += ca
	}
	return elems, attrs
}
