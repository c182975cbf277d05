package log_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo"
	"github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	"github.com/kevin-cantwell/glyphart/internal/log"
)

var _ = Describe("Logging", func() {
	table.DescribeTable("ParseLevel",
		func(s string, want slog.Level) {
			l, err := log.ParseLevel(s)
			Expect(err).NotTo(HaveOccurred())
			Expect(l).To(Equal(want))
		},
		table.Entry("debug", "debug", slog.LevelDebug),
		table.Entry("default", "", slog.LevelInfo),
		table.Entry("warning", "Warning", slog.LevelWarn),
		table.Entry("error", "error", slog.LevelError),
	)

	It("rejects unknown levels", func() {
		_, err := log.ParseLevel("loud")
		Expect(err).To(HaveOccurred())
	})

	It("filters by level and keeps attributes", func() {
		var buf bytes.Buffer
		logger, closers, err := log.NewLogger(&buf, slog.LevelInfo, "")
		Expect(err).NotTo(HaveOccurred())
		Expect(closers).To(BeEmpty())

		logger.Debug("hidden")
		logger.With("image", "cat").Info("converted", "cols", 80)
		Expect(buf.String()).NotTo(ContainSubstring("hidden"))
		Expect(buf.String()).To(ContainSubstring("converted image=cat cols=80"))
	})

	It("copies records to a log file", func() {
		dir, err := os.MkdirTemp("", "glyphart")
		Expect(err).NotTo(HaveOccurred())
		defer os.RemoveAll(dir)
		path := filepath.Join(dir, "glyphart.log")

		var console bytes.Buffer
		logger, closers, err := log.NewLogger(&console, slog.LevelWarn, path)
		Expect(err).NotTo(HaveOccurred())
		logger.Warn("careful", "n", 1)
		for _, c := range closers {
			Expect(c.Close()).To(Succeed())
		}

		data, err := os.ReadFile(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(ContainSubstring("msg=careful n=1"))
		Expect(console.String()).To(ContainSubstring("careful n=1"))
	})

	It("reports handler failures after writing to every handler", func() {
		var buf bytes.Buffer
		broken := slog.NewTextHandler(failingWriter{}, nil)
		h := log.NewMultiHandler(broken, slog.NewTextHandler(&buf, nil))

		r := slog.NewRecord(time.Now(), slog.LevelInfo, "hello", 0)
		err := h.Handle(context.Background(), r)
		Expect(err).To(MatchError(ContainSubstring("disk full")))
		Expect(buf.String()).To(ContainSubstring("msg=hello"))
	})
})

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }
