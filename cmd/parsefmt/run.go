package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/francoispqt/gojay"
	"github.com/spf13/cobra"
	"github.com/viant/parsefmt"
	"github.com/viant/parsefmt/conv"
)

const maxLineSize = 1024 * 1024

type mode int

const (
	modeParse mode = iota
	modeSearch
	modeFindAll
)

func init() {
	for _, cmd := range []*cobra.Command{
		{Use: "parse [file...]", Short: "Match every input line as a whole", RunE: runWith(modeParse)},
		{Use: "search [file...]", Short: "Find the first match in every input line", RunE: runWith(modeSearch)},
		{Use: "findall [file...]", Short: "Find all matches in the whole input", RunE: runWith(modeFindAll)},
	} {
		rootCmd.AddCommand(cmd)
	}
}

func runWith(m mode) func(cmd *cobra.Command, files []string) error {
	return func(cmd *cobra.Command, files []string) error {
		matcher, err := newMatcher()
		if err != nil {
			return err
		}
		return run(matcher, m, files, os.Stdin, os.Stdout)
	}
}

// run writes results of every file, or stdin when no file is given; results written before an error are flushed
func run(matcher *parsefmt.Matcher, m mode, files []string, stdin io.Reader, stdout io.Writer) (err error) {
	out := bufio.NewWriter(stdout)
	defer func() {
		if flushErr := out.Flush(); err == nil {
			err = flushErr
		}
	}()
	if len(files) == 0 {
		return process(matcher, m, "stdin", stdin, out)
	}
	for _, file := range files {
		if err = processFile(matcher, m, file, out); err != nil {
			return err
		}
	}
	return nil
}

func newMatcher() (*parsefmt.Matcher, error) {
	extra := map[string]conv.Converter{}
	if rootCmd.withDate {
		extra["date"] = conv.NewDate()
	}
	if rootCmd.withTime {
		extra["time"] = conv.NewTime()
	}
	logger := parsefmt.NewLogger(rootCmd.verbose)
	return parsefmt.CompileWithTypes(rootCmd.template, rootCmd.caseSensitive, extra,
		parsefmt.WithEngine(rootCmd.engine),
		parsefmt.WithLogger(logger))
}

func processFile(matcher *parsefmt.Matcher, m mode, name string, out io.Writer) error {
	file, err := os.Open(name)
	if err != nil {
		return err
	}
	defer file.Close()
	return process(matcher, m, name, file, out)
}

func process(matcher *parsefmt.Matcher, m mode, name string, in io.Reader, out io.Writer) error {
	if m == modeFindAll {
		data, err := io.ReadAll(in)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", name, err)
		}
		for _, result := range matcher.FindAll(string(data)) {
			if err = write(out, result); err != nil {
				return err
			}
		}
		return nil
	}
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for n := 1; scanner.Scan(); n++ {
		var result *parsefmt.Result
		var err error
		if m == modeParse {
			result, err = matcher.Parse(scanner.Text())
		} else {
			result, err = matcher.Search(scanner.Text())
		}
		if err != nil {
			log.Printf("%s:%d: %v", name, n, err)
			continue
		}
		if err = write(out, result); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	return nil
}

func write(out io.Writer, result *parsefmt.Result) error {
	data, err := gojay.MarshalJSONObject(result)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = out.Write(data)
	return err
}
