package rackshelf

import (
	"fmt"

	"github.com/beevik/etree"
	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// JSON returns the analysis as indented JSON, the document shape the web
// layer persists and serves (the "<name>_analysis.json" artifact).
func (r *Rack) JSON() ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("could not marshal the analysis as json: %w", err)
	}
	return data, nil
}

// YAML returns the analysis as YAML, with the same field names as JSON.
func (r *Rack) YAML() ([]byte, error) {
	data, err := yaml.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("could not marshal the analysis as yaml: %w", err)
	}
	return data, nil
}

// ExtractXML decompresses a rack file and returns the wrapped project
// document as indented XML, for the on-disk .xml dump written alongside the
// analysis. It fails with the same errors as Decode but does not walk the
// tree.
func ExtractXML(data []byte) ([]byte, error) {
	xmlData, err := inflate(data)
	if err != nil {
		return nil, err
	}
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(xmlData); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("could not serialize the document: %w", err)
	}
	return out, nil
}
