/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package export reads scheduler topology exports into typed records.
package export

import (
	"bytes"
	"fmt"
	"io"

	"github.com/clbanning/mxj/v2"
	"github.com/ohler55/ojg"
	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"
	"golang.org/x/text/encoding/htmlindex"
)

const (
	attrPrefix = "@"
	textKey    = "#text"
	markerName = "Domain"
)

var markerPath = jp.MustParseString("$.." + markerName)

func init() {
	mxj.SetAttrPrefix(attrPrefix)
	mxj.XmlCharsetReader = charsetReader
}

// charsetReader decodes exports declaring a non UTF-8 encoding such as ISO-8859-1.
func charsetReader(charset string, input io.Reader) (io.Reader, error) {
	encoding, err := htmlindex.Get(charset)
	if err != nil {
		return nil, fmt.Errorf("unsupported charset %q: %w", charset, err)
	}
	return encoding.NewDecoder().Reader(input), nil
}

// Document is a parsed export held as a generic attribute tree. Attributes are keyed
// with an "@" prefix, mixed text is held under "#text", repeated elements become lists
// and empty elements become empty strings.
type Document struct {
	root map[string]any
}

// Parse parses export content into a Document.
func Parse(content []byte) (*Document, error) {
	if len(bytes.TrimSpace(content)) == 0 {
		return nil, fmt.Errorf("document is empty")
	}

	m, err := mxj.NewMapXml(content)
	if err != nil {
		return nil, err
	}
	return &Document{root: map[string]any(m)}, nil
}

// Root returns the underlying attribute tree.
func (d *Document) Root() map[string]any {
	return d.root
}

// HasMarker reports whether the export root element is present anywhere in the tree.
func (d *Document) HasMarker() bool {
	return len(markerPath.Get(d.root)) > 0
}

// JSON renders the attribute tree as indented JSON with sorted keys.
func (d *Document) JSON() string {
	return oj.JSON(d.root, &ojg.Options{Indent: 2, Sort: true})
}
