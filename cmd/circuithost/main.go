// SPDX-License-Identifier: EPL-2.0

// Command circuithost streams an audio file through a registered
// circuit and writes the processed result as WAV.
//
// Usage:
//
//	circuithost -input in.wav -circuit tube -output out.wav [options]
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/circuithost/audio"
	"github.com/ik5/circuithost/circuit"
	"github.com/ik5/circuithost/circuits/tube"
	"github.com/ik5/circuithost/formats/aiff"
	"github.com/ik5/circuithost/formats/mp3"
	"github.com/ik5/circuithost/formats/vorbis"
	"github.com/ik5/circuithost/formats/wav"
	"github.com/ik5/circuithost/host"
)

// paramFlags collects repeated -param name=value flags.
type paramFlags []string

func (p *paramFlags) String() string { return strings.Join(*p, ",") }

func (p *paramFlags) Set(value string) error {
	*p = append(*p, value)
	return nil
}

func decoderRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	return reg
}

func circuitRegistry() *circuit.Registry {
	reg := circuit.NewRegistry()
	reg.Register("tube", tube.Module())
	return reg
}

func main() {
	var (
		inputPath   = flag.String("input", "", "input audio file (wav, mp3, ogg, aiff)")
		circuitName = flag.String("circuit", "", "registered circuit name (e.g., tube)")
		outputPath  = flag.String("output", "", "output WAV file")
		sampleRate  = flag.Int("sample-rate", host.DefaultSampleRate, "requested sample rate (the input stream's rate always wins)")
		bufferSize  = flag.Int("buffer-size", host.DefaultBufferSize, "buffer size in samples")
		oversample  = flag.Int("oversample", host.DefaultOversample, "oversampling factor")
		measure     = flag.Bool("measure-latency", false, "report buffer latency analysis")
		verbose     = flag.Bool("verbose", false, "verbose progress output")
		params      paramFlags
	)
	flag.Var(&params, "param", "set a circuit parameter as NAME=VALUE (repeatable)")
	flag.Parse()

	if *inputPath == "" || *circuitName == "" || *outputPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -input, -circuit and -output are required")
		flag.Usage()
		os.Exit(2)
	}

	cfg := host.Config{
		SampleRate: *sampleRate,
		BufferSize: *bufferSize,
		Oversample: *oversample,
		Verbose:    *verbose,
		Logf: func(format string, args ...any) {
			fmt.Printf(format+"\n", args...)
		},
	}
	// Out-of-range settings fall back to the defaults here so every
	// value reported below is the one the run actually uses.
	cfg = cfg.WithDefaults()

	for _, p := range params {
		a, err := host.ParseAssignment(p)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(2)
		}
		cfg.Params = append(cfg.Params, a)
	}

	mod, ok := circuitRegistry().Get(*circuitName)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown circuit %q\n", *circuitName)
		os.Exit(1)
	}
	if err := mod.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: circuit %q: %v\n", *circuitName, err)
		os.Exit(1)
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(*inputPath), "."))
	dec, ok := decoderRegistry().Get(ext)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unsupported input format %q\n", ext)
		os.Exit(1)
	}

	inFile, err := os.Open(*inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening input file: %v\n", err)
		os.Exit(1)
	}
	defer inFile.Close()

	src, err := dec.Decode(inFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding input file: %v\n", err)
		os.Exit(1)
	}
	defer src.Close()

	fmt.Println("Configuration:")
	fmt.Printf("  Input: %s\n", *inputPath)
	fmt.Printf("  Output: %s\n", *outputPath)
	fmt.Printf("  Circuit: %s\n", *circuitName)
	fmt.Printf("  Buffer size: %d samples\n", cfg.BufferSize)
	fmt.Printf("  Oversampling: %dx\n", cfg.Oversample)

	fmt.Println("\nInput stream:")
	fmt.Printf("  Sample rate: %d Hz\n", src.SampleRate())
	fmt.Printf("  Channels: %d\n", src.Channels())

	if mod.Info != nil {
		if info := mod.Info(); info != nil {
			fmt.Printf("\nCircuit: %s\n", info.Name)
			fmt.Printf("  Description: %s\n", info.Description)
			fmt.Printf("  Inputs: %d, Outputs: %d\n", info.NumInputs, info.NumOutputs)
		}
	}

	if *verbose && len(cfg.Params) > 0 {
		fmt.Println("\nSetting parameters:")
		for _, a := range cfg.Params {
			fmt.Printf("  %s = %.3f\n", a.Name, a.Value)
		}
	}

	outFile, err := os.Create(*outputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening output file: %v\n", err)
		os.Exit(1)
	}
	defer outFile.Close()

	sink := wav.NewWriter(outFile, src.SampleRate(), src.Channels())

	fmt.Println("\nProcessing audio...")

	stats, err := host.Run(mod, src, sink, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := sink.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error finalizing output file: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("\nProcessing complete!")
	fmt.Printf("  Output file: %s\n", *outputPath)
	fmt.Printf("  Total frames: %d\n", stats.Frames)
	fmt.Printf("  Audio duration: %.3f seconds\n", stats.AudioDuration.Seconds())
	fmt.Printf("  Processing time: %.3f seconds\n", stats.ProcessingTime.Seconds())
	fmt.Printf("  Real-time ratio: %.2fx\n", stats.RealTimeRatio)
	fmt.Printf("  DSP Load: %.1f%%\n", stats.LoadPercent)
	fmt.Printf("  Latency: %.2f ms (%d samples @ %d Hz)\n", stats.LatencyMs, cfg.BufferSize, src.SampleRate())
	fmt.Printf("  Buffer count: %d\n", stats.Buffers)

	if *measure {
		fmt.Println("\nLatency Analysis:")
		fmt.Printf("  Buffer latency: %.2f ms\n", stats.LatencyMs)
		fmt.Println("  Recommended for real-time: < 10 ms")
		if stats.LatencyMs > 10.0 {
			fmt.Println("  WARNING: Latency exceeds recommended threshold")
		}
	}
}
