package animation

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/spaghettifunk/transformation/engine/config"
	"github.com/spaghettifunk/transformation/engine/math"
)

// NewSink builds the sink named by out.Format, sampled every out.Every frames.
func NewSink(out config.OutputConfig, w io.Writer, logger *log.Logger) (UniformSink, error) {
	var sink UniformSink
	switch out.Format {
	case config.OutputFormatText:
		sink = NewTextSink(w)
	case config.OutputFormatLog:
		sink = NewLogSink(logger)
	case config.OutputFormatNone:
		return DiscardSink, nil
	default:
		return nil, fmt.Errorf("%w: output.format %q", config.ErrInvalidConfig, out.Format)
	}
	return NewSampledSink(sink, out.Every), nil
}

// UniformSink receives column-major 4x4 matrices, the way a graphics API
// receives a "mat4 uniform, not transposed" upload.
type UniformSink interface {
	UploadMatrix4(name string, data [16]float32) error
}

// TextSink prints every upload row by row.
type TextSink struct {
	w      io.Writer
	upload uint64
}

func NewTextSink(w io.Writer) *TextSink {
	return &TextSink{w: w}
}

func (s *TextSink) UploadMatrix4(name string, data [16]float32) error {
	s.upload++
	if _, err := fmt.Fprintf(s.w, "# %d %s\n", s.upload, name); err != nil {
		return err
	}
	return math.Mat4{Data: data}.Print(s.w)
}

// LogSink emits each upload as a structured log line.
type LogSink struct {
	logger *log.Logger
}

func NewLogSink(logger *log.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) UploadMatrix4(name string, data [16]float32) error {
	s.logger.Info("upload", "uniform", name,
		"translation", fmt.Sprintf("(%.3f, %.3f, %.3f)", data[12], data[13], data[14]),
		"data", data)
	return nil
}

type discardSink struct{}

func (discardSink) UploadMatrix4(string, [16]float32) error { return nil }

// DiscardSink accepts and drops every upload.
var DiscardSink UniformSink = discardSink{}

// SampledSink forwards one upload out of every n.
type SampledSink struct {
	next  UniformSink
	every uint64
	count uint64
}

func NewSampledSink(next UniformSink, every uint64) *SampledSink {
	if every == 0 {
		every = 1
	}
	return &SampledSink{next: next, every: every}
}

func (s *SampledSink) UploadMatrix4(name string, data [16]float32) error {
	s.count++
	if (s.count-1)%s.every != 0 {
		return nil
	}
	return s.next.UploadMatrix4(name, data)
}

type Upload struct {
	Name string
	Data [16]float32
}

// RecordingSink keeps every upload in memory.
type RecordingSink struct {
	mutex   sync.Mutex
	uploads []Upload
}

func (s *RecordingSink) UploadMatrix4(name string, data [16]float32) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.uploads = append(s.uploads, Upload{Name: name, Data: data})
	return nil
}

func (s *RecordingSink) Uploads() []Upload {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	out := make([]Upload, len(s.uploads))
	copy(out, s.uploads)
	return out
}
