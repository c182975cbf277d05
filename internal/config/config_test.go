package config_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo"
	"github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	"github.com/kevin-cantwell/glyphart/internal/config"
)

const (
	yamlDoc = `
log:
  level: debug
width: 120
mode: dither
threshold: 0
charset: extended
color: teal
dark: true
text-file: speech.txt
`
	tomlDoc = `
width = 120
mode = "dither"
threshold = 0
charset = "extended"
color = "teal"
dark = true
text-file = "speech.txt"

[log]
level = "debug"
`
	jsonDoc = `{"log": {"level": "debug"}, "width": 120, "mode": "dither", "threshold": 0,
"charset": "extended", "color": "teal", "dark": true, "text-file": "speech.txt"}`
)

var _ = Describe("Config", func() {
	zero := 0
	want := config.Config{
		Log:       config.Log{Level: "debug"},
		Width:     120,
		Mode:      "dither",
		Threshold: &zero,
		Charset:   "extended",
		Color:     "teal",
		Dark:      true,
		TextFile:  "speech.txt",
	}

	table.DescribeTable("parses every format the same way",
		func(ext, doc string) {
			var cfg config.Config
			Expect(config.Parse(ext, []byte(doc), &cfg)).To(Succeed())
			Expect(cfg).To(Equal(want))
		},
		table.Entry("yaml", ".yaml", yamlDoc),
		table.Entry("yml", ".YML", yamlDoc),
		table.Entry("toml", ".toml", tomlDoc),
		table.Entry("json", ".json", jsonDoc),
	)

	It("leaves an unset threshold nil", func() {
		var cfg config.Config
		Expect(config.Parse(".yaml", []byte("width: 10\n"), &cfg)).To(Succeed())
		Expect(cfg.Threshold).To(BeNil())
	})

	It("rejects unknown yaml keys", func() {
		var cfg config.Config
		Expect(config.Parse(".yaml", []byte("wdith: 10\n"), &cfg)).NotTo(Succeed())
	})

	It("rejects unknown extensions", func() {
		var cfg config.Config
		Expect(config.Parse(".ini", nil, &cfg)).To(MatchError(config.ErrUnknownFormat))
	})

	It("loads files", func() {
		dir, err := os.MkdirTemp("", "glyphart")
		Expect(err).NotTo(HaveOccurred())
		defer os.RemoveAll(dir)
		path := filepath.Join(dir, "glyphart.yaml")
		Expect(os.WriteFile(path, []byte(yamlDoc), 0o644)).To(Succeed())

		cfg, err := config.Load(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg).To(Equal(want))

		_, err = config.Load(filepath.Join(dir, "missing.yaml"))
		Expect(err).To(HaveOccurred())
	})

	It("returns defaults without a path", func() {
		cfg, err := config.Load("")
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg).To(Equal(config.Config{}))
	})
})
