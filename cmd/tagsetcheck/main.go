// tagsetcheck verifies that the outcome vocabulary of a trained sequence
// model forms a valid chunking grammar, and optionally decodes a tag
// sequence back to spans.
//
// Usage:
//
//	tagsetcheck [-scheme bio|bilou|both] [-decode tags.txt] vocabulary.txt
//
// The vocabulary file holds one outcome per line; the decode file holds one
// tag per line, one line per token.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"k8s.io/klog/v2"

	"github.com/sitedata/opennlp/sequence"
)

var (
	flagScheme = flag.String("scheme", "both", "chunking scheme to check: bio, bilou or both")
	flagDecode = flag.String("decode", "", "optional file with one tag per line to decode into spans")

	okStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	failStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	headerStyle = lipgloss.NewStyle().Bold(true)
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: tagsetcheck [flags] vocabulary.txt")
		flag.PrintDefaults()
		os.Exit(2)
	}

	schemes, err := selectedSchemes(*flagScheme)
	if err != nil {
		klog.Exitf("%v", err)
	}

	outcomes, err := readLines(flag.Arg(0))
	if err != nil {
		klog.Exitf("Failed to read vocabulary: %v", err)
	}
	klog.V(1).Infof("Read %d outcomes from %q", len(outcomes), flag.Arg(0))

	allConsistent := true
	for _, scheme := range schemes {
		codec, err := sequence.ForScheme(scheme)
		if err != nil {
			klog.Exitf("%v", err)
		}
		if codec.CompatibleOutcomes(outcomes) {
			fmt.Printf("%s %s\n", scheme, okStyle.Render("consistent"))
		} else {
			fmt.Printf("%s %s\n", scheme, failStyle.Render("inconsistent"))
			allConsistent = false
		}
	}

	if *flagDecode != "" {
		tags, err := readLines(*flagDecode)
		if err != nil {
			klog.Exitf("Failed to read tag sequence: %v", err)
		}
		codec, err := sequence.ForScheme(schemes[0])
		if err != nil {
			klog.Exitf("%v", err)
		}
		printSpans(codec.Decode(tags))
	}

	if !allConsistent {
		os.Exit(1)
	}
}

func selectedSchemes(name string) ([]sequence.Scheme, error) {
	switch strings.ToLower(name) {
	case "bio":
		return []sequence.Scheme{sequence.BIO}, nil
	case "bilou":
		return []sequence.Scheme{sequence.BILOU}, nil
	case "both":
		return []sequence.Scheme{sequence.BIO, sequence.BILOU}, nil
	default:
		return nil, fmt.Errorf("unknown scheme %q, want bio, bilou or both", name)
	}
}

func printSpans(spans []sequence.Span) {
	if len(spans) == 0 {
		fmt.Println("no spans decoded")
		return
	}
	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return lipgloss.NewStyle()
		}).
		Headers("START", "END", "TYPE")
	for _, span := range spans {
		spanType := span.Type
		if spanType == "" {
			spanType = "-"
		}
		tbl.Row(strconv.Itoa(span.Start), strconv.Itoa(span.End), spanType)
	}
	fmt.Println(tbl)
}

func readLines(filePath string) ([]string, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}
