//Package ljjson implements the serialization of Lennard-Jones scans as JSON, so the
//results of a scan can be collected by other programs, for instance via UNIX pipes.
package ljjson

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	lj "github.com/rmera/ljscan"
)

//An easily JSON-serializable error type,
type Error struct {
	deco          []string
	IsError       bool //If this is false (no error) all the other fields will be at their zero-values.
	InOptions     bool //If error, was it in parsing the options?
	InProcess     bool
	InPostProcess bool   //was it in preparing the output?
	Function      string //which go function gave the error
	Message       string //the error itself
}

//Error implements the error interface
func (J *Error) Error() string {
	return J.Message
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (J *Error) Decorate(dec string) []string {
	if dec == "" {
		return J.deco
	}
	J.deco = append(J.deco, dec)
	return J.deco
}

//Serializes the error. Panics on failure.
func (J *Error) Marshal() []byte {
	ret, err2 := json.Marshal(J)
	if err2 != nil {
		panic(strings.Join([]string{J.Error(), err2.Error()}, " - "))
	}
	return ret
}

//Takes an error and some additional info to create a json-marshal-ble error
func NewError(where, function string, err error) *Error {
	jerr := new(Error)
	jerr.IsError = true
	switch where {
	case "options":
		jerr.InOptions = true
	case "postprocess":
		jerr.InPostProcess = true
	default:
		jerr.InProcess = true
	}
	jerr.Function = function
	jerr.Message = err.Error()
	jerr.deco = []string{function}
	return jerr
}

//Minimum is the serializable form of lj.Min
type Minimum struct {
	Energy    float64 `json:"energy_j"`
	Index     int     `json:"index"`
	Distance  float64 `json:"distance_a"`
	Formatted string  `json:"formatted"`
	Strict    bool    `json:"strict"`
}

//Report contains the results of a scan, ready to be passed back to the calling program.
type Report struct {
	EpsilonJ  float64   `json:"epsilon_j"`
	EpsilonEV float64   `json:"epsilon_ev"`
	Sigma     float64   `json:"sigma_a"`
	Distances []float64 `json:"distances_a"`
	Energies  []float64 `json:"energies_j"`
	Minimum   Minimum   `json:"minimum"`
}

//NewReport builds a Report from the scan S and its minimum m. The minimum energy is formatted
//in units of 10^exponent J with the given decimal places.
func NewReport(S *lj.Scan, m lj.Min, strict bool, exponent, places int) *Report {
	return &Report{
		EpsilonJ:  S.Pair.Epsilon,
		EpsilonEV: lj.Joule2EV(S.Pair.Epsilon),
		Sigma:     S.Pair.Sigma,
		Distances: S.Distances,
		Energies:  S.Energies,
		Minimum: Minimum{
			Energy:    m.Energy,
			Index:     m.Index,
			Distance:  m.Distance,
			Formatted: lj.FormatScaled(m.Energy, exponent, places),
			Strict:    strict,
		},
	}
}

//Send Marshals the report and writes to out, returns an error or nil
func (J *Report) Send(out io.Writer) *Error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(J); err != nil {
		return NewError("postprocess", "Report.Send", err)
	}
	return nil
}

//DecodeReport reads one JSON report from in.
func DecodeReport(in io.Reader) (*Report, *Error) {
	dec := json.NewDecoder(in)
	r := new(Report)
	if err := dec.Decode(r); err != nil {
		return nil, NewError("process", "DecodeReport", err)
	}
	if len(r.Distances) != len(r.Energies) {
		return nil, NewError("process", "DecodeReport", fmt.Errorf("%d distances but %d energies", len(r.Distances), len(r.Energies)))
	}
	return r, nil
}

//Scan rebuilds the lj.Scan from the report.
func (J *Report) Scan() *lj.Scan {
	return &lj.Scan{
		Pair:      lj.NewPair(J.EpsilonJ, J.Sigma),
		Distances: J.Distances,
		Energies:  J.Energies,
	}
}
