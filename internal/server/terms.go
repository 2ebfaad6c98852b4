package server

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/transform"

	"github.com/atomicstack/term-glossary/internal/glossary"
)

// minColumns is abbreviation, english and chinese; category is optional.
const minColumns = 3

// ReadTermsFile opens path and decodes it with ParseTerms.
func ReadTermsFile(path string) ([]glossary.Term, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open terms file: %w", err)
	}
	defer f.Close()
	return ParseTerms(f)
}

// ParseTerms decodes a GBK tab-separated terms file. The first line is a
// header. Invalid byte sequences decode to U+FFFD instead of failing.
func ParseTerms(r io.Reader) ([]glossary.Term, error) {
	decoded := transform.NewReader(r, simplifiedchinese.GBK.NewDecoder())
	scanner := bufio.NewScanner(decoded)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	terms := []glossary.Term{}
	header := true
	for scanner.Scan() {
		if header {
			header = false
			continue
		}
		term, ok := parseLine(scanner.Text())
		if !ok {
			continue
		}
		terms = append(terms, term)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read terms: %w", err)
	}
	return terms, nil
}

func parseLine(line string) (glossary.Term, bool) {
	parts := strings.Split(strings.TrimSpace(line), "\t")
	if len(parts) < minColumns {
		return glossary.Term{}, false
	}
	category := glossary.Uncategorized
	if len(parts) > minColumns {
		if c := strings.TrimSpace(parts[3]); c != "" && !strings.EqualFold(c, "null") {
			category = c
		}
	}
	return glossary.Term{
		Abbreviation: strings.TrimSpace(parts[0]),
		English:      strings.TrimSpace(parts[1]),
		Chinese:      strings.TrimSpace(parts[2]),
		Category:     category,
	}, true
}
