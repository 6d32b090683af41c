// Command typist is a terminal host for the phone input field. Each line of
// stdin is replayed into the field keystroke by keystroke, and the resulting
// model state is printed: formatted display, region flag, validity, error.
//
// Commands:
//
//	<text>   type the text, one character at a time
//	:del     press delete once
//	:raw X   seed the raw value directly, bypassing the sanitizer
//	:reset   clear the field
//
// It demonstrates that the field needs no specific UI toolkit: the host
// supplies a text widget, posts edits to a run loop, and reads the model.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"phonefield_backend/internal/field"
	"phonefield_backend/platform/config"
	"phonefield_backend/platform/logger"
	"phonefield_backend/platform/phone"
	"phonefield_backend/platform/runloop"
)

// lineInput is the host's text widget: a plain string buffer confined to
// the run loop goroutine.
type lineInput struct {
	text string
}

func (i *lineInput) Text() string        { return i.text }
func (i *lineInput) SetText(text string) { i.text = text }

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}
	log := logger.New(cfg.Env)

	engine, err := phone.NewEngine(cfg.DefaultRegion)
	if err != nil {
		log.Error("failed to initialize phone engine", "error", err)
		panic("failed to initialize phone engine: " + err.Error())
	}

	loop := runloop.NewLoop(256)
	input := &lineInput{}
	f := field.New(engine, loop,
		field.WithTextInput(input),
		field.WithConfigureInput(func(field.TextInput) {
			fmt.Printf("phone field ready (default region %s), type a number:\n", engine.DefaultRegion())
		}),
	)

	go readEdits(loop, f, input)

	// The main goroutine owns the loop: every edit and every formatting
	// cycle runs here, serially.
	loop.Run()
}

// readEdits turns stdin lines into edits posted to the loop.
func readEdits(loop *runloop.Loop, f *field.Field, input *lineInput) {
	defer loop.Close()

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()

		switch {
		case line == ":reset":
			loop.Schedule(func() {
				input.SetText("")
				f.SetRaw("")
			})
		case line == ":del":
			loop.Schedule(func() {
				f.WillChange("")
				if input.text != "" {
					_, size := utf8.DecodeLastRuneInString(input.text)
					input.text = input.text[:len(input.text)-size]
				}
				f.DidChange()
			})
		case strings.HasPrefix(line, ":raw "):
			raw := strings.TrimPrefix(line, ":raw ")
			loop.Schedule(func() {
				f.SetRaw(raw)
			})
		default:
			for _, r := range line {
				r := r
				loop.Schedule(func() {
					f.WillChange(string(r))
					input.text += string(r)
					f.DidChange()
				})
			}
		}

		// The edits above schedule a coalesced refresh while they run, so
		// rendering must be deferred one more turn to observe its outcome.
		loop.Schedule(func() {
			loop.Schedule(func() {
				render(f.Model())
			})
		})
	}
}

func render(m *field.Model) {
	flag := m.RegionFlag()
	if flag == "" {
		flag = "--"
	}

	fmt.Printf("%s  %-20q raw=%-16q region=%-2s valid=%-5v", flag, m.Display(), m.Raw(), m.Region(), m.Valid())
	if m.Err() != "" {
		fmt.Printf("  error: %s", m.Err())
	}
	fmt.Println()
}
