package fileio

import (
	"bufio"
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// decoderFor maps a chardet charset name to a decoder; nil means UTF-8 as is.
func decoderFor(cs string) *encoding.Decoder {
	switch strings.ToLower(cs) {
	case "windows-1251", "cp1251":
		return charmap.Windows1251.NewDecoder()
	case "windows-1252", "cp1252":
		return charmap.Windows1252.NewDecoder()
	case "iso-8859-1", "latin1":
		return charmap.ISO8859_1.NewDecoder()
	case "utf-16le":
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
	case "utf-16be":
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder()
	default:
		return nil
	}
}

// readCSV: кодировка определяется по первым 2 КБ, разделитель: ',' или ';'.
func readCSV(r io.Reader) ([][]string, error) {
	br := bufio.NewReader(r)
	peek, _ := br.Peek(2048)

	var src io.Reader = br
	if len(peek) > 0 {
		if det, err := chardet.NewTextDetector().DetectBest(peek); err == nil && det != nil {
			if dec := decoderFor(det.Charset); dec != nil {
				src = transform.NewReader(br, dec)
			}
		}
	}

	cr := csv.NewReader(src)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	if sniffSemicolon(peek) {
		cr.Comma = ';'
	}

	var rows [][]string
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, rec)
	}
	return rows, nil
}

// Excel в локалях с десятичной запятой сохраняет CSV через ';'
func sniffSemicolon(peek []byte) bool {
	line := string(peek)
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	return strings.Count(line, ";") > strings.Count(line, ",")
}
