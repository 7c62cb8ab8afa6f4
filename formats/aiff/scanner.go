package aiff

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/soundskim/sound"
	"github.com/ik5/soundskim/utils"
)

// AIFF carries no container frames either; the scan uses the same
// 20ms virtual frame cadence as the WAV backend.
const framesPerSecond = 50

const progressEvery = 200

// Factory registers the AIFF backend.
type Factory struct{}

func (Factory) Extensions() []string      { return []string{"aiff", "aif"} }
func (Factory) NewScanner() sound.Scanner { return Scanner{} }

// Scanner builds a frame index for PCM AIFF files: fixed 20ms frames
// over the SSND sample data, gains from per-frame peak amplitude. The
// sample count comes from the COMM chunk.
type Scanner struct{}

func (Scanner) Scan(r io.ReadSeeker, size int64, progress sound.ProgressFunc) (*sound.Index, error) {
	dec := aiff.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, ErrNotAiff
	}

	dec.ReadInfo()
	if err := dec.Err(); err != nil {
		return nil, fmt.Errorf("comm chunk: %v: %w", err, sound.ErrMalformed)
	}

	bitDepth := int(dec.BitDepth)
	switch bitDepth {
	case 16, 24, 32:
	default:
		return nil, ErrUnsupportedBitDepth
	}

	sampleRate := dec.SampleRate
	channels := int(dec.NumChans)
	if channels < 1 {
		return nil, fmt.Errorf("channel count %d: %w", channels, sound.ErrMalformed)
	}

	spf := sampleRate / framesPerSecond
	if spf < 1 {
		return nil, fmt.Errorf("sample rate %d: %w", sampleRate, sound.ErrMalformed)
	}

	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("ssnd chunk: %v: %w", err, sound.ErrMalformed)
	}

	dataStart, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	bytesPerSample := bitDepth / 8
	totalSamples := int(dec.NumSampleFrames) * channels
	dataBytes := int64(totalSamples) * int64(bytesPerSample)
	if dataStart+dataBytes > size {
		return nil, fmt.Errorf("sample data of %d bytes at %d passes end of file: %w",
			dataBytes, dataStart, sound.ErrMalformed)
	}

	frameBytes := spf * channels * bytesPerSample
	numFrames := int((dataBytes + int64(frameBytes) - 1) / int64(frameBytes))

	offsets := make([]int64, numFrames)
	lens := make([]int, numFrames)
	gains := make([]int, numFrames)

	buf := &goaudio.IntBuffer{
		Data:   make([]int, spf*channels),
		Format: dec.Format(),
	}

	remaining := dataBytes
	for i := 0; i < numFrames; i++ {
		if progress != nil && i%progressEvery == 0 {
			if !progress(float64(i) / float64(numFrames)) {
				return nil, fmt.Errorf("frame %d of %d: %w", i, numFrames, sound.ErrCanceled)
			}
		}

		frameLen := int64(frameBytes)
		if frameLen > remaining {
			frameLen = remaining
		}
		offsets[i] = dataStart + int64(i)*int64(frameBytes)
		lens[i] = int(frameLen)
		remaining -= frameLen

		peak, err := framePeak(dec, buf, int(frameLen)/bytesPerSample)
		if err != nil {
			return nil, fmt.Errorf("frame %d: %w", i, err)
		}
		gains[i] = utils.PeakGain(peak, bitDepth)
	}

	if progress != nil && !progress(1) {
		return nil, fmt.Errorf("%w", sound.ErrCanceled)
	}

	idx, err := sound.NewIndex(sound.IndexSpec{
		Filetype:        "AIFF",
		SampleRate:      sampleRate,
		Channels:        channels,
		SamplesPerFrame: spf,
		FileSizeBytes:   size,
		AvgBitrateKbps:  sampleRate * channels * bitDepth / 1000,
		Offsets:         offsets,
		Lens:            lens,
		Gains:           gains,
		Seekable:        true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return idx, nil
}

// framePeak reads want interleaved samples through buf and returns the
// largest magnitude seen. Running out of sample data before want
// samples means the COMM chunk promised more than the SSND chunk holds.
func framePeak(dec *aiff.Decoder, buf *goaudio.IntBuffer, want int) (int, error) {
	peak := 0

	for got := 0; got < want; {
		buf.Data = buf.Data[:want-got]

		n, err := dec.PCMBuffer(buf)
		if err != nil {
			return 0, fmt.Errorf("%w", err)
		}
		if n == 0 {
			return 0, fmt.Errorf("sample data ends early: %w", sound.ErrMalformed)
		}

		for _, s := range buf.Data[:n] {
			if s < 0 {
				s = -s
			}
			if s > peak {
				peak = s
			}
		}

		got += n
	}

	return peak, nil
}
