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

package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type PropertiesTestSuite struct {
	suite.Suite
}

func TestPropertiesSuite(t *testing.T) {
	suite.Run(t, new(PropertiesTestSuite))
}

func (suite *PropertiesTestSuite) TestFoldProperties() {
	testCases := []struct {
		name     string
		node     map[string]any
		expected Properties
	}{
		{"NoProperties", map[string]any{}, Properties{}},
		{"EmptyContainer", map[string]any{"Properties": ""}, Properties{}},
		{
			name: "SinglePair",
			node: map[string]any{"Properties": map[string]any{
				"Property": map[string]any{"@key": "width", "@value": "300"},
			}},
			expected: Properties{"width": "300"},
		},
		{
			name: "ListWithDuplicateAndJunk",
			node: map[string]any{"Properties": map[string]any{
				"Property": []any{
					map[string]any{"@key": "background", "@value": "#FF0000"},
					"junk",
					map[string]any{"@value": "no key"},
					map[string]any{"@key": "background", "@value": "#00FF00"},
				},
			}},
			expected: Properties{"background": "#00FF00"},
		},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, foldProperties(tc.node))
		})
	}
}

func (suite *PropertiesTestSuite) TestTypedGetters() {
	props := Properties{"width": "260px", "height": "abc", "zero": "0", "background": ""}

	assert.Equal(suite.T(), 260, props.Int("width", 220))
	assert.Equal(suite.T(), 40, props.Int("height", 40))
	assert.Equal(suite.T(), 90, props.Int("zero", 90))
	assert.Equal(suite.T(), 90, props.Int("missing", 90))
	assert.Equal(suite.T(), "#4b68ff", props.String("background", "#4b68ff"))
	assert.Equal(suite.T(), "260px", props.String("width", ""))
}

func (suite *PropertiesTestSuite) TestParseFontSpec() {
	testCases := []struct {
		descriptor string
		expected   FontSpec
	}{
		{"SansSerif#12#false#false", FontSpec{Family: "SansSerif", Size: 12}},
		{"Dialog#16#true#true", FontSpec{Family: "Dialog", Size: 16, Bold: true, Italic: true}},
		{"Monospaced#10", FontSpec{Family: "Monospaced", Size: 10}},
		{"Serif#big#TRUE#x", FontSpec{Family: "Serif", Size: 12, Bold: true}},
		{"", FontSpec{Family: "SansSerif", Size: 12}},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.descriptor, func(t *testing.T) {
			assert.Equal(t, tc.expected, ParseFontSpec(tc.descriptor))
		})
	}
}

func (suite *PropertiesTestSuite) TestShapeHelpers() {
	assert.Equal(suite.T(), []any{}, asList(nil))
	assert.Equal(suite.T(), []any{"x"}, asList("x"))
	assert.Equal(suite.T(), []any{"x", "y"}, asList([]any{"x", "y"}))

	_, ok := asMap("text")
	assert.False(suite.T(), ok)
	empty, ok := asMap("")
	assert.True(suite.T(), ok)
	assert.Empty(suite.T(), empty)

	assert.Equal(suite.T(), "run.sh", text(map[string]any{"@lang": "sh", "#text": "run.sh"}))
	assert.Equal(suite.T(), "", text(42))
	assert.Equal(suite.T(), -5, leadingInt(" -5", 1))
}
