//Package table writes and reads Lennard-Jones scans as compressed text tables.
//
//A table starts with "key=value" header lines, followed by a "** N" line
//with the number of rows and by N "distance energy" rows. The compression
//is chosen from the file name: ".gz" gzip, ".flate" DEFLATE, ".txt" none,
//and zstd for anything else.
package table

import (
	"bufio"
	"compress/flate"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
	lj "github.com/rmera/ljscan"
)

const (
	compression = "compression"
	epsilonKey  = "epsilon_j"
	sigmaKey    = "sigma_a"
)

//nopCloser turns a Writer into a WriteCloser whose Close does nothing.
type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

func codec(name string) string {
	n := strings.ToLower(name)
	switch {
	case strings.HasSuffix(n, ".gz"):
		return "gzip"
	case strings.HasSuffix(n, ".flate"):
		return "flate"
	case strings.HasSuffix(n, ".txt"):
		return "none"
	default:
		return "zstd"
	}
}

//Write!
type Writer struct {
	f         *os.File
	h         io.WriteCloser
	b         *bufio.Writer
	filename  string
	rows      int
	written   int
	writeable bool
}

//NewWriter creates the file name and writes the header and the row count to it.
//compressionLevel, if given, is used for the gzip and flate codecs.
func NewWriter(name string, rows int, header map[string]string, compressionLevel ...int) (*Writer, error) {
	level := flate.BestCompression
	if len(compressionLevel) > 0 {
		level = compressionLevel[0]
	}
	W := new(Writer)
	W.filename = name
	var err error
	W.f, err = os.Create(name)
	if err != nil {
		return nil, &Error{lj.UnableToOpen + ": " + err.Error(), name, []string{"NewWriter"}, true}
	}
	switch codec(name) {
	case "gzip":
		W.h, err = gzip.NewWriterLevel(W.f, level)
	case "flate":
		W.h, err = flate.NewWriter(W.f, level)
	case "none":
		W.h = nopCloser{W.f}
	default:
		W.h, err = zstd.NewWriter(W.f, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	}
	if err != nil {
		W.f.Close()
		return nil, &Error{"Can't create compressor: " + err.Error(), name, []string{"NewWriter"}, true}
	}
	W.b = bufio.NewWriter(W.h)
	W.rows = rows
	W.writeable = true
	keys := make([]string, 0, len(header))
	for k := range header {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(W.b, "%s=%s\n", k, header[k])
	}
	fmt.Fprintf(W.b, "%s=%s\n", compression, codec(name))
	fmt.Fprintf(W.b, "** %d\n", rows)
	return W, nil
}

//WNext writes one row. Floats are written with the fewest digits that read back exactly.
func (W *Writer) WNext(distance, energy float64) error {
	if W == nil || !W.writeable {
		return &Error{TableUnIniWrite, "", []string{"WNext"}, true}
	}
	if W.written >= W.rows {
		return &Error{fmt.Sprintf("%d rows declared, can't write more", W.rows), W.filename, []string{"WNext"}, true}
	}
	_, err := fmt.Fprintf(W.b, "%s %s\n", strconv.FormatFloat(distance, 'g', -1, 64), strconv.FormatFloat(energy, 'g', -1, 64))
	if err != nil {
		return &Error{err.Error(), W.filename, []string{"WNext"}, true}
	}
	W.written++
	return nil
}

//Close flushes and closes the table. It is an error to close a table with
//fewer rows than declared, but the file is closed anyway.
func (W *Writer) Close() error {
	if W == nil || !W.writeable {
		return nil
	}
	W.writeable = false
	errs := []error{W.b.Flush(), W.h.Close(), W.f.Close()}
	for _, err := range errs {
		if err != nil {
			return &Error{err.Error(), W.filename, []string{"Close"}, true}
		}
	}
	if W.written != W.rows {
		return &Error{fmt.Sprintf("%d rows declared, %d written", W.rows, W.written), W.filename, []string{"Close"}, true}
	}
	return nil
}

//WriteScan writes the whole scan S to the file name, with the pair
//parameters in the header, plus any extra header entries.
func WriteScan(name string, S *lj.Scan, extra map[string]string) error {
	header := make(map[string]string, len(extra)+2)
	for k, v := range extra {
		header[k] = v
	}
	header[epsilonKey] = strconv.FormatFloat(S.Pair.Epsilon, 'g', -1, 64)
	header[sigmaKey] = strconv.FormatFloat(S.Pair.Sigma, 'g', -1, 64)
	W, err := NewWriter(name, S.Len(), header)
	if err != nil {
		return errDecorate(err, "WriteScan")
	}
	for i, r := range S.Distances {
		if err := W.WNext(r, S.Energies[i]); err != nil {
			W.Close()
			return errDecorate(err, "WriteScan")
		}
	}
	if err := W.Close(); err != nil {
		return errDecorate(err, "WriteScan")
	}
	return nil
}
