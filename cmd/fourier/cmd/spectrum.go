package cmd

import (
	"fmt"
	"log/slog"
	"math"
	"math/cmplx"
	"os"
	"sort"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/mjibson/go-dsp/window"
	"github.com/spf13/cobra"

	"github.com/cwbudde/fourier"
)

var (
	spectrumSize   int
	spectrumWindow string
	spectrumTop    int
)

var spectrumCmd = &cobra.Command{
	Use:   "spectrum <file.wav>",
	Short: "Print the strongest frequency bins of a WAV file",
	Args:  cobra.ExactArgs(1),
	RunE:  runSpectrum,
}

func init() {
	spectrumCmd.Flags().IntVar(&spectrumSize, "size", 4096, "transform size (even); input is truncated or zero-padded")
	spectrumCmd.Flags().StringVar(&spectrumWindow, "window", "hann", "window function: hann, hamming, blackman, none")
	spectrumCmd.Flags().IntVar(&spectrumTop, "top", 10, "number of bins to print")

	rootCmd.AddCommand(spectrumCmd)
}

func runSpectrum(cmd *cobra.Command, args []string) error {
	samples, sampleRate, err := readWavMono(args[0])
	if err != nil {
		return err
	}

	slog.Debug("decoded wav", "file", args[0], "samples", len(samples), "rate", sampleRate)

	n := spectrumSize
	if n < 2 || n%2 != 0 {
		return fmt.Errorf("size must be even and >= 2, got %d", n)
	}

	frame := make([]float64, n)
	copy(frame, samples)

	if err := applyWindow(frame, spectrumWindow); err != nil {
		return err
	}

	plan, err := fourier.NewPlanReal64(n, fourier.PlanOptions{})
	if err != nil {
		return err
	}

	spec := make([]complex128, plan.SpectrumLen())
	if err := plan.Forward(spec, frame); err != nil {
		return err
	}

	type bin struct {
		index     int
		magnitude float64
	}

	bins := make([]bin, len(spec))
	for i, c := range spec {
		bins[i] = bin{index: i, magnitude: cmplx.Abs(c)}
	}

	sort.Slice(bins, func(i, j int) bool { return bins[i].magnitude > bins[j].magnitude })

	top := spectrumTop
	if top > len(bins) {
		top = len(bins)
	}

	binWidth := float64(sampleRate) / float64(n)

	fmt.Printf("%10s  %12s  %12s\n", "bin", "freq (Hz)", "magnitude")
	for _, b := range bins[:top] {
		fmt.Printf("%10d  %12.1f  %12.3f\n", b.index, float64(b.index)*binWidth, b.magnitude)
	}

	return nil
}

// readWavMono decodes a WAV file into normalized float64 samples,
// averaging channels down to mono.
func readWavMono(path string) ([]float64, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open wav file: %w", err)
	}
	defer f.Close()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return nil, 0, fmt.Errorf("%s: not a valid wav file", path)
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to decode wav data: %w", err)
	}

	return monoFloats(buf, int(decoder.BitDepth)), int(decoder.SampleRate), nil
}

func monoFloats(buf *audio.IntBuffer, bitDepth int) []float64 {
	channels := buf.Format.NumChannels
	if channels < 1 {
		channels = 1
	}

	scale := math.Pow(2, float64(bitDepth-1))
	frames := len(buf.Data) / channels
	out := make([]float64, frames)

	for i := 0; i < frames; i++ {
		var sum float64
		for c := 0; c < channels; c++ {
			sum += float64(buf.Data[i*channels+c])
		}

		out[i] = sum / float64(channels) / scale
	}

	return out
}

func applyWindow(frame []float64, name string) error {
	switch name {
	case "hann":
		window.Apply(frame, window.Hann)
	case "hamming":
		window.Apply(frame, window.Hamming)
	case "blackman":
		window.Apply(frame, window.Blackman)
	case "none":
	default:
		return fmt.Errorf("unknown window %q", name)
	}

	return nil
}
