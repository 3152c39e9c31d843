// Command blocktool decodes, re-encodes, hashes and signs Electra
// beacon block containers from the command line.
//
// Usage:
//
//	blocktool -list
//	blocktool -spec -preset minimal
//	blocktool -type ElectraSignedBeaconBlockMainnet -in block.ssz -from ssz -to json
//	blocktool -type ElectraBlindedBeaconBlockGnosis -in block.json -from json -root -header
//	blocktool -type ElectraBeaconBlockContentsMinimal -in contents.ssz -from ssz -sign 0x... -to ssz
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/geanlabs/beacontypes/config"
	"github.com/geanlabs/beacontypes/electra"
	"github.com/geanlabs/beacontypes/observability/logging"
	"github.com/geanlabs/beacontypes/observability/metrics"
	"github.com/geanlabs/beacontypes/preset"
	"github.com/geanlabs/beacontypes/types"
)

const version = "v0.1.0"

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (optional)")
	typeName := flag.String("type", "", "Registered type name, see -list")
	inPath := flag.String("in", "", "Input file (- for stdin)")
	outPath := flag.String("out", "", "Output file (default stdout)")
	from := flag.String("from", "ssz", "Input format (ssz, json)")
	to := flag.String("to", "", "Output format (ssz, json); empty = no re-encode")
	showRoot := flag.Bool("root", false, "Print the hash tree root")
	showHeader := flag.Bool("header", false, "Print the block header fields")
	signature := flag.String("sign", "", "Hex signature to wrap the message with")
	showSpec := flag.Bool("spec", false, "Print the preset spec table as YAML")
	presetName := flag.String("preset", "", "Preset for -spec (mainnet, minimal, gnosis)")
	list := flag.Bool("list", false, "List registered type names")
	metricsPort := flag.Int("metrics-port", 0, "Prometheus metrics port (0 = disabled)")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error)")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "blocktool: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *metricsPort != 0 {
		cfg.MetricsPort = *metricsPort
	}

	logging.Init(parseLevel(cfg.LogLevel))
	log.SetOutput(io.Discard)
	logger := logging.NewComponentLogger(logging.CompTool)

	if cfg.MetricsPort != 0 {
		metrics.Serve(cfg.MetricsPort)
		logger.Info("metrics server started", "port", cfg.MetricsPort)
	}

	if *list {
		for _, name := range electra.Names() {
			fmt.Println(name)
		}
		return
	}

	if *showSpec {
		name := *presetName
		if name == "" {
			name = cfg.PresetBase
		}
		p, err := preset.ByName(name)
		if err != nil {
			logger.Error("unknown preset", "err", err)
			os.Exit(1)
		}
		out, err := yaml.Marshal(p)
		if err != nil {
			logger.Error("spec export failed", "err", err)
			os.Exit(1)
		}
		os.Stdout.Write(out)
		return
	}

	if *typeName == "" || *inPath == "" {
		fmt.Fprintln(os.Stderr, "blocktool: -type and -in are required (or use -list / -spec)")
		os.Exit(1)
	}

	nt, err := electra.Lookup(*typeName)
	if err != nil {
		logger.Error("type lookup failed", "err", err)
		os.Exit(1)
	}

	input, err := readInput(*inPath)
	if err != nil {
		logger.Error("read input failed", "err", err)
		os.Exit(1)
	}

	var v any
	switch *from {
	case "ssz":
		v, err = nt.DecodeSSZ(input)
	case "json":
		v, err = nt.DecodeJSON(input)
	default:
		err = fmt.Errorf("unknown input format: %q", *from)
	}
	if err != nil {
		logger.Error("decode failed", "type", nt.Name(), "format", *from, "err", err)
		os.Exit(1)
	}
	logger.Debug("decoded", "type", nt.Name(), "format", *from, "bytes", len(input))

	if *showRoot {
		root, err := nt.HashTreeRoot(v)
		if err != nil {
			logger.Error("hash tree root failed", "err", err)
			os.Exit(1)
		}
		fmt.Println(root.String())
	}

	if *showHeader {
		h, ok := headerOf(v)
		if !ok {
			logger.Error("type has no block header", "type", nt.Name())
			os.Exit(1)
		}
		dict, err := electra.HeaderDict(nt.Codec(), h)
		if err != nil {
			logger.Error("header extraction failed", "err", err)
			os.Exit(1)
		}
		for _, key := range []string{"slot", "proposer_index", "parent_root", "state_root", "body_root"} {
			fmt.Printf("%s: %s\n", key, dict[key])
		}
	}

	if *signature != "" {
		signed, signedName, err := signValue(nt.Name(), v, *signature)
		if err != nil {
			logger.Error("signing failed", "err", err)
			os.Exit(1)
		}
		v = signed
		nt, err = electra.Lookup(signedName)
		if err != nil {
			logger.Error("type lookup failed", "err", err)
			os.Exit(1)
		}
		logger.Info("message signed", "type", nt.Name())
	}

	if *to != "" {
		var out []byte
		switch *to {
		case "ssz":
			out, err = nt.EncodeSSZ(v)
		case "json":
			out, err = nt.EncodeJSON(v)
		default:
			err = fmt.Errorf("unknown output format: %q", *to)
		}
		if err != nil {
			logger.Error("encode failed", "type", nt.Name(), "format", *to, "err", err)
			os.Exit(1)
		}
		if err := writeOutput(*outPath, out); err != nil {
			logger.Error("write output failed", "err", err)
			os.Exit(1)
		}
	}
}

// headerOf pulls the header-bearing block out of any registered shape.
func headerOf(v any) (types.HeaderFields, bool) {
	switch t := v.(type) {
	case *types.SignedBeaconBlock:
		return t.Message, true
	case *types.SignedBlindedBeaconBlock:
		return t.Message, true
	case *types.BlindedBeaconBlock:
		return t, true
	case *types.BeaconBlockContents:
		return t.Block, true
	case *types.SignedBeaconBlockContents:
		return t.SignedBlock.Message, true
	default:
		return nil, false
	}
}

// signValue wraps an unsigned shape with the signature and returns the
// signed value plus the registry name of its signed counterpart.
func signValue(name string, v any, signature string) (any, string, error) {
	suffix := presetSuffix(name)
	switch t := v.(type) {
	case *types.BlindedBeaconBlock:
		signed, err := electra.SignBlindedBlock(t, signature)
		return signed, "ElectraSignedBlindedBeaconBlock" + suffix, err
	case *types.BeaconBlockContents:
		signed, err := electra.SignBlockContents(t, signature)
		return signed, "ElectraSignedBeaconBlockContents" + suffix, err
	default:
		return nil, "", fmt.Errorf("cannot sign %T, already signed or not a message", v)
	}
}

func presetSuffix(name string) string {
	for _, s := range []string{"Mainnet", "Minimal", "Gnosis"} {
		if len(name) > len(s) && name[len(name)-len(s):] == s {
			return s
		}
	}
	return ""
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
