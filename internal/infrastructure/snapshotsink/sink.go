package snapshotsink

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"wallet_export/internal/app/port"
	"wallet_export/internal/domain/entity"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Output modes accepted by New.
const (
	ModeStdout = "stdout"
	ModeFile   = "file"
)

// New returns the sink for mode. out is used by the stdout sink, dir by the file sink.
func New(mode string, out io.Writer, dir string) (port.SnapshotSink, error) {
	switch mode {
	case ModeStdout, "":
		return NewWriterSink(out), nil
	case ModeFile:
		return NewFileSink(dir), nil
	default:
		return nil, fmt.Errorf("unknown output mode %q (want %s or %s)", mode, ModeStdout, ModeFile)
	}
}

// WriterSink writes each snapshot as indented JSON to an io.Writer.
type WriterSink struct {
	mu  sync.Mutex
	out io.Writer
}

func NewWriterSink(out io.Writer) *WriterSink {
	return &WriterSink{out: out}
}

func (s *WriterSink) Write(snapshot *entity.WalletSnapshot) error {
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot of %s: %w", snapshot.Wallet, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.out.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write snapshot of %s: %w", snapshot.Wallet, err)
	}
	return nil
}

// FileSink writes each snapshot to <dir>/<wallet>.json.
type FileSink struct {
	dir string
}

func NewFileSink(dir string) *FileSink {
	return &FileSink{dir: dir}
}

func (s *FileSink) Write(snapshot *entity.WalletSnapshot) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create output directory %s: %w", s.dir, err)
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot of %s: %w", snapshot.Wallet, err)
	}

	path := s.Path(snapshot.Wallet)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Path is the file a wallet's snapshot is written to.
func (s *FileSink) Path(wallet string) string {
	return filepath.Join(s.dir, wallet+".json")
}
