// SPDX-License-Identifier: EPL-2.0

package sound

import (
	"crypto/md5"
	"encoding/hex"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeFrameFile lays out a fake container matching newTestIndex: a 44
// byte header and 320 byte frames with deterministic content. It
// returns the path and the raw bytes.
func writeFrameFile(t *testing.T, frames int) (string, []byte) {
	t.Helper()

	data := make([]byte, 44+320*frames)
	for i := range data {
		data[i] = byte(i * 7 % 251)
	}

	path := filepath.Join(t.TempDir(), "frames.raw")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v, want nil", err)
	}

	return path, data
}

// frameBytes slices frame i out of a writeFrameFile payload.
func frameBytes(data []byte, i int) []byte {
	return data[44+320*i : 44+320*(i+1)]
}

func TestFingerprint_MatchesDirectDigest(t *testing.T) {
	t.Parallel()

	x := newTestIndex(t, repeatGain(5, 4))
	path, data := writeFrameFile(t, 4)

	got, err := Fingerprint(x, path)
	if err != nil {
		t.Fatalf("Fingerprint() error = %v, want nil", err)
	}

	h := md5.New()
	for i := 0; i < 4; i++ {
		h.Write(frameBytes(data, i))
	}
	want := hex.EncodeToString(h.Sum(nil))

	if got != want {
		t.Errorf("Fingerprint() = %s, want %s", got, want)
	}
}

func TestFingerprint_Format(t *testing.T) {
	t.Parallel()

	x := newTestIndex(t, repeatGain(5, 2))
	path, _ := writeFrameFile(t, 2)

	got, err := Fingerprint(x, path)
	if err != nil {
		t.Fatalf("Fingerprint() error = %v, want nil", err)
	}

	if len(got) != 32 {
		t.Fatalf("Fingerprint() length = %d, want 32", len(got))
	}
	for _, r := range got {
		if !strings.ContainsRune("0123456789abcdef", r) {
			t.Errorf("Fingerprint() = %s, want lowercase hex only", got)
			break
		}
	}
}

func TestFingerprint_Deterministic(t *testing.T) {
	t.Parallel()

	x := newTestIndex(t, repeatGain(5, 4))
	path, _ := writeFrameFile(t, 4)

	first, err := Fingerprint(x, path)
	if err != nil {
		t.Fatalf("Fingerprint() error = %v, want nil", err)
	}
	second, err := Fingerprint(x, path)
	if err != nil {
		t.Fatalf("Fingerprint() error = %v, want nil", err)
	}

	if first != second {
		t.Errorf("Fingerprint() not deterministic: %s then %s", first, second)
	}
}

func TestFingerprint_FrameBytesMatter(t *testing.T) {
	t.Parallel()

	x := newTestIndex(t, repeatGain(5, 3))
	path, data := writeFrameFile(t, 3)

	base, err := Fingerprint(x, path)
	if err != nil {
		t.Fatalf("Fingerprint() error = %v, want nil", err)
	}

	// Flipping a byte inside the first frame changes the digest.
	changed := append([]byte(nil), data...)
	changed[44] ^= 0xff
	other := filepath.Join(t.TempDir(), "changed.raw")
	if err := os.WriteFile(other, changed, 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v, want nil", err)
	}

	got, err := Fingerprint(x, other)
	if err != nil {
		t.Fatalf("Fingerprint() error = %v, want nil", err)
	}
	if got == base {
		t.Error("Fingerprint() unchanged after frame byte flip")
	}
}

func TestFingerprint_NonFrameBytesIgnored(t *testing.T) {
	t.Parallel()

	x := newTestIndex(t, repeatGain(5, 3))
	path, data := writeFrameFile(t, 3)

	base, err := Fingerprint(x, path)
	if err != nil {
		t.Fatalf("Fingerprint() error = %v, want nil", err)
	}

	// A different header and trailing garbage leave the digest alone.
	changed := append([]byte(nil), data...)
	for i := 0; i < 44; i++ {
		changed[i] = 0xee
	}
	changed = append(changed, []byte("trailing tag data")...)

	other := filepath.Join(t.TempDir(), "padded.raw")
	if err := os.WriteFile(other, changed, 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v, want nil", err)
	}

	got, err := Fingerprint(x, other)
	if err != nil {
		t.Fatalf("Fingerprint() error = %v, want nil", err)
	}
	if got != base {
		t.Errorf("Fingerprint() = %s after header rewrite, want %s", got, base)
	}
}

func TestFingerprint_CapsAtTenFrames(t *testing.T) {
	t.Parallel()

	x := newTestIndex(t, repeatGain(5, 12))
	path, data := writeFrameFile(t, 12)

	base, err := Fingerprint(x, path)
	if err != nil {
		t.Fatalf("Fingerprint() error = %v, want nil", err)
	}

	// Frames past the tenth are outside the digest.
	changed := append([]byte(nil), data...)
	copy(frameBytes(changed, 11), []byte("overwritten"))
	other := filepath.Join(t.TempDir(), "tail.raw")
	if err := os.WriteFile(other, changed, 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v, want nil", err)
	}

	got, err := Fingerprint(x, other)
	if err != nil {
		t.Fatalf("Fingerprint() error = %v, want nil", err)
	}
	if got != base {
		t.Errorf("Fingerprint() = %s after 11th frame rewrite, want %s", got, base)
	}

	ten, err := FingerprintFrames(x, path, 10)
	if err != nil {
		t.Fatalf("FingerprintFrames(10) error = %v, want nil", err)
	}
	if ten != base {
		t.Errorf("Fingerprint() = %s, want the ten frame digest %s", base, ten)
	}
}

func TestFingerprintFrames_FewerThanRequested(t *testing.T) {
	t.Parallel()

	// Three frames on disk, a hundred requested: digest all three.
	x := newTestIndex(t, repeatGain(5, 3))
	path, _ := writeFrameFile(t, 3)

	all, err := FingerprintFrames(x, path, 100)
	if err != nil {
		t.Fatalf("FingerprintFrames(100) error = %v, want nil", err)
	}
	three, err := FingerprintFrames(x, path, 3)
	if err != nil {
		t.Fatalf("FingerprintFrames(3) error = %v, want nil", err)
	}
	if all != three {
		t.Errorf("FingerprintFrames(100) = %s, want %s", all, three)
	}
}

func TestFingerprintFrames_ZeroFrames(t *testing.T) {
	t.Parallel()

	x := newTestIndex(t, repeatGain(5, 3))
	path, _ := writeFrameFile(t, 3)

	got, err := FingerprintFrames(x, path, 0)
	if err != nil {
		t.Fatalf("FingerprintFrames(0) error = %v, want nil", err)
	}

	// MD5 of the empty string.
	if got != "d41d8cd98f00b204e9800998ecf8427e" {
		t.Errorf("FingerprintFrames(0) = %s, want the empty digest", got)
	}
}

func TestFingerprintFrames_Errors(t *testing.T) {
	t.Parallel()

	x := newTestIndex(t, repeatGain(5, 3))
	path, data := writeFrameFile(t, 3)

	if _, err := FingerprintFrames(x, path, -1); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("FingerprintFrames(-1) error = %v, want ErrInvalidRange", err)
	}

	missing := filepath.Join(t.TempDir(), "nope.raw")
	if _, err := Fingerprint(x, missing); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Fingerprint() on missing file error = %v, want ErrNotExist", err)
	}

	// Even a zero frame digest needs the file to exist.
	if _, err := FingerprintFrames(x, missing, 0); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("FingerprintFrames(0) on missing file error = %v, want ErrNotExist", err)
	}

	// A file now shorter than its recorded frames cannot be digested.
	short := filepath.Join(t.TempDir(), "short.raw")
	if err := os.WriteFile(short, data[:44+320], 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v, want nil", err)
	}
	if _, err := Fingerprint(x, short); err == nil {
		t.Error("Fingerprint() error = nil, want error for truncated file")
	}
}
