package commands

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"roundtrip/internal/charset"
	"roundtrip/internal/domain"
	"roundtrip/internal/errors"
	"roundtrip/internal/jrand"
	"roundtrip/internal/stream"
)

const (
	// BufferLength is the number of characters moved by each write and read.
	BufferLength = 16384
	// Seed makes the generated buffer identical on every run.
	Seed int64 = 1

	tempFilePattern = "random_ascii*txt"

	firstChar rune = ' '
	lastChar  rune = 'z' // exclusive
)

// GenerateChars returns n characters drawn from [' ', 'z') by a generator
// seeded with seed.
func GenerateChars(seed int64, n int) []rune {
	rnd := jrand.New(seed)
	chars := make([]rune, n)
	for i := range chars {
		chars[i] = firstChar + rnd.Int31n(lastChar-firstChar)
	}
	return chars
}

// RoundTripCommand writes a generated character buffer to a temporary file
// through an encoder and reads it back through a decoder, repeatedly.
type RoundTripCommand struct {
	fs       domain.FileSystemAdapter
	hostInfo domain.HostInfoProvider
	logger   *slog.Logger
}

// NewRoundTripCommand creates a new round trip command. hostInfo may be nil.
func NewRoundTripCommand(
	fs domain.FileSystemAdapter,
	hostInfo domain.HostInfoProvider,
	logger *slog.Logger,
) *RoundTripCommand {
	return &RoundTripCommand{
		fs:       fs,
		hostInfo: hostInfo,
		logger:   logger,
	}
}

// RoundTripRequest contains the parameters for the round trip command.
type RoundTripRequest struct {
	Encoding        string
	Repeat          int
	TempDir         string // empty means the system temp directory
	IncludeHostInfo bool
}

// Execute runs the benchmark. The data read back is never compared with the
// data written.
func (c *RoundTripCommand) Execute(ctx context.Context, req RoundTripRequest) (*domain.RoundTripResult, error) {
	if req.Repeat < 0 {
		return nil, errors.NewValidationError(
			"repeat",
			fmt.Sprint(req.Repeat),
			"non_negative",
			"repeat count must not be negative",
		)
	}

	name := req.Encoding
	if name == "" {
		name = charset.DefaultName
	}

	// Resolve before touching the filesystem so a bad name leaves nothing behind.
	cs, err := charset.Resolve(name)
	if err != nil {
		return nil, err
	}

	result := &domain.RoundTripResult{
		RunID:             uuid.NewString(),
		Encoding:          name,
		CanonicalEncoding: cs.Name,
		Repeat:            req.Repeat,
		BufferLength:      BufferLength,
		Seed:              Seed,
	}

	logger := c.logger.With("runId", result.RunID, "encoding", cs.Name)

	if req.IncludeHostInfo && c.hostInfo != nil {
		info, hostErr := c.hostInfo.HostInfo(ctx)
		if hostErr != nil {
			logger.WarnContext(ctx, "Failed to collect host info", "error", hostErr)
		} else {
			result.Host = info
		}
	}

	chars := GenerateChars(Seed, BufferLength)

	out, err := c.fs.CreateTemp(req.TempDir, tempFilePattern)
	if err != nil {
		return nil, errors.NewIOError("create", req.TempDir, err)
	}
	path := out.Name()

	logger.DebugContext(ctx, "Created temporary file", "path", path)

	in, err := c.fs.Open(path)
	if err != nil {
		return nil, errors.Join(
			errors.NewIOError("open", path, err),
			closeFile(out),
			c.remove(path),
		)
	}

	counter := &countingWriter{w: out}
	w := stream.NewWriter(counter, cs.Encoding)
	r := stream.NewReader(in, cs.Encoding)

	logger.InfoContext(ctx, "Starting round trip", "repeat", req.Repeat, "path", path)

	start := time.Now()
	runErr := c.loop(ctx, logger, req.Repeat, chars, w, r, result)
	result.Elapsed = time.Since(start)

	var writerErr error
	if err := w.Close(); err != nil {
		writerErr = errors.NewIOError("close", path, err)
	}
	result.BytesWritten = counter.n

	if err := errors.Join(runErr, writerErr, closeFile(out), closeFile(in), c.remove(path)); err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "Round trip completed",
		"writes", result.Writes,
		"reads", result.Reads,
		"charsWritten", result.CharsWritten,
		"charsRead", result.CharsRead,
		"elapsed", result.Elapsed)

	return result, nil
}

func (c *RoundTripCommand) loop(
	ctx context.Context,
	logger *slog.Logger,
	repeat int,
	chars []rune,
	w *stream.Writer,
	r *stream.Reader,
	result *domain.RoundTripResult,
) error {
	readChars := make([]rune, len(chars))
	progress := rate.Sometimes{Interval: time.Second}

	for i := 0; i < repeat; i++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("round trip interrupted after %d iterations: %w", i, err)
		}

		n, err := w.WriteChars(chars)
		if err == nil {
			err = w.Flush()
		}
		result.Writes++
		result.CharsWritten += int64(n)
		if err != nil {
			return errors.NewIOError("write", "", err)
		}

		n, err = r.ReadChars(readChars)
		result.Reads++
		result.CharsRead += int64(n)
		if err != nil && !stderrors.Is(err, io.EOF) {
			return errors.NewIOError("read", "", err)
		}

		progress.Do(func() {
			logger.DebugContext(ctx, "Round trip progress", "iteration", i+1, "repeat", repeat)
		})
	}
	return nil
}

func (c *RoundTripCommand) remove(path string) error {
	if err := c.fs.Remove(path); err != nil {
		return errors.NewIOError("remove", path, err)
	}
	return nil
}

func closeFile(f domain.File) error {
	if err := f.Close(); err != nil {
		return errors.NewIOError("close", f.Name(), err)
	}
	return nil
}

// countingWriter records how many encoded bytes reach the file.
type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
