package table

import (
	"bufio"
	"compress/flate"
	"compress/gzip"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
	lj "github.com/rmera/ljscan"
)

//*zstd.Decoder's Close doesn't return an error, so it needs a wrapper to be an io.ReadCloser.
type zstdReadCloser struct {
	*zstd.Decoder
}

func (z zstdReadCloser) Close() error {
	z.Decoder.Close()
	return nil
}

//Read!
type Reader struct {
	f        *os.File
	d        io.ReadCloser
	h        *bufio.Reader
	filename string
	rows     int
	read     int
	readable bool
}

//New opens the table in the file name and reads its header, which is returned as a map.
func New(name string) (*Reader, map[string]string, error) {
	R := new(Reader)
	R.filename = name
	var err error
	R.f, err = os.Open(name)
	if err != nil {
		return nil, nil, &Error{lj.UnableToOpen + ": " + err.Error(), name, []string{"New"}, true}
	}
	switch codec(name) {
	case "gzip":
		R.d, err = gzip.NewReader(R.f)
	case "flate":
		R.d = flate.NewReader(R.f)
	case "none":
		R.d = io.NopCloser(R.f)
	default:
		var z *zstd.Decoder
		z, err = zstd.NewReader(R.f)
		R.d = zstdReadCloser{z}
	}
	if err != nil {
		R.f.Close()
		return nil, nil, &Error{"Can't read header " + err.Error(), name, []string{"New"}, true}
	}
	R.h = bufio.NewReader(R.d)
	header := make(map[string]string)
	for {
		line, err := R.h.ReadString('\n')
		if err != nil {
			R.Close()
			return nil, nil, &Error{lj.WrongFormat + ": header ended before the row count", name, []string{"New"}, true}
		}
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "**") {
			R.rows, err = strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, "**")))
			if err != nil || R.rows < 0 {
				R.Close()
				return nil, nil, &Error{lj.WrongFormat + ": bad row count " + line, name, []string{"New"}, true}
			}
			break
		}
		kv := strings.SplitN(line, "=", 2)
		if len(kv) != 2 {
			R.Close()
			return nil, nil, &Error{lj.WrongFormat + ": bad header line " + line, name, []string{"New"}, true}
		}
		header[kv[0]] = kv[1]
	}
	R.readable = true
	return R, header, nil
}

//Len returns the number of rows declared in the table.
func (R *Reader) Len() int {
	return R.rows
}

//Next reads the next row. After the last row, it returns an error
//that implements LastRowError.
func (R *Reader) Next() (distance, energy float64, err error) {
	if R == nil || !R.readable {
		return 0, 0, &Error{TableUnIniRead, "", []string{"Next"}, true}
	}
	if R.read >= R.rows {
		return 0, 0, &lastRowError{fileName: R.filename, deco: []string{"Next"}}
	}
	line, err := R.h.ReadString('\n')
	if err != nil && !(err == io.EOF && line != "") {
		return 0, 0, &Error{ReadError + ": " + err.Error(), R.filename, []string{"Next"}, true}
	}
	f := strings.Fields(line)
	if len(f) != 2 {
		return 0, 0, &Error{lj.WrongFormat + ": " + strings.TrimSpace(line), R.filename, []string{"Next"}, true}
	}
	distance, err = strconv.ParseFloat(f[0], 64)
	if err == nil {
		energy, err = strconv.ParseFloat(f[1], 64)
	}
	if err != nil {
		return 0, 0, &Error{lj.WrongFormat + ": " + err.Error(), R.filename, []string{"Next"}, true}
	}
	R.read++
	return distance, energy, nil
}

func (R *Reader) Close() {
	if R == nil {
		return
	}
	if R.d != nil {
		R.d.Close()
	}
	R.f.Close()
	R.readable = false
}

//ReadScan reads a whole table written by WriteScan. The pair parameters are taken
//from the header; the energies are the stored ones, not recomputed.
func ReadScan(name string) (*lj.Scan, map[string]string, error) {
	R, header, err := New(name)
	if err != nil {
		return nil, nil, errDecorate(err, "ReadScan")
	}
	defer R.Close()
	P := new(lj.Pair)
	P.Epsilon, err = strconv.ParseFloat(header[epsilonKey], 64)
	if err == nil {
		P.Sigma, err = strconv.ParseFloat(header[sigmaKey], 64)
	}
	if err != nil {
		return nil, nil, &Error{lj.WrongFormat + ": missing or bad pair parameters", name, []string{"ReadScan"}, true}
	}
	S := &lj.Scan{Pair: P, Distances: make([]float64, 0, R.Len()), Energies: make([]float64, 0, R.Len())}
	for {
		r, e, err := R.Next()
		if err != nil {
			if _, ok := err.(LastRowError); ok {
				break
			}
			return nil, nil, errDecorate(err, "ReadScan")
		}
		S.Distances = append(S.Distances, r)
		S.Energies = append(S.Energies, e)
	}
	return S, header, nil
}
