// Copyright (c) 2025 Stefano Scafiti
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

// Package report writes XML reports of content inspections.
package report

import (
	"encoding/xml"
	"io"
	"os"
	"runtime"
	"time"
)

const OutputVersion = "1.0"

// Header is the root element of an inspection report.
type Header struct {
	XMLName xml.Name `xml:"inspection"`
	Version string   `xml:"version,attr,omitempty"`
	Creator Creator  `xml:"creator"`
}

// Creator describes the software and host that produced the report.
type Creator struct {
	XMLName   xml.Name `xml:"creator"`
	Package   string   `xml:"package"`
	Version   string   `xml:"version"`
	OS        string   `xml:"os"`
	Arch      string   `xml:"arch"`
	Host      string   `xml:"host"`
	StartTime string   `xml:"start_time"`
}

// File is one inspected file.
type File struct {
	XMLName     xml.Name `xml:"file"`
	Path        string   `xml:"path"`
	BytesRead   int      `xml:"bytes_read"`
	ContentType string   `xml:"content_type"`
	Text        bool     `xml:"text"`
}

// NewCreator fills in the host environment for pkg at version.
func NewCreator(pkg, version string) Creator {
	host, _ := os.Hostname()
	return Creator{
		Package:   pkg,
		Version:   version,
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		Host:      host,
		StartTime: time.Now().Format(time.RFC3339),
	}
}

// Writer streams an inspection report to an io.Writer, one file element
// at a time.
type Writer struct {
	w   io.Writer
	enc *xml.Encoder
}

func NewWriter(w io.Writer) *Writer {
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")

	return &Writer{
		w:   w,
		enc: enc,
	}
}

// WriteHeader writes the XML declaration and the opening <inspection> tag
// with the creator element.
func (w *Writer) WriteHeader(hdr Header) error {
	_, _ = w.w.Write([]byte(xml.Header))

	start := xml.StartElement{
		Name: xml.Name{Local: "inspection"},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "version"}, Value: hdr.Version},
		},
	}
	if err := w.enc.EncodeToken(start); err != nil {
		return err
	}
	return w.enc.Encode(hdr.Creator)
}

// WriteFile appends one inspected file to the report.
func (w *Writer) WriteFile(f File) error {
	return w.enc.Encode(f)
}

// Close writes the closing </inspection> tag and flushes the encoder.
func (w *Writer) Close() error {
	if err := w.enc.EncodeToken(xml.EndElement{Name: xml.Name{Local: "inspection"}}); err != nil {
		return err
	}
	return w.enc.Flush()
}
