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

package palette

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type PaletteTestSuite struct {
	suite.Suite
}

func TestPaletteSuite(t *testing.T) {
	suite.Run(t, new(PaletteTestSuite))
}

func (suite *PaletteTestSuite) TestNormalize() {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"TableEntry", "#0000FF", "#7C9FFF"},
		{"TableEntryLowercase", "#0000ff", "#7C9FFF"},
		{"TableEntryWithoutHash", "4b68ff", "#7C9FFF"},
		{"TableRed", "#FF0000", "#FF8888"},
		{"TablePink", "#ffb6c1", "#FFCCDD"},
		{"AlreadyBalanced", "#123456", "#123456"},
		{"BalancedLowercaseIsCanonicalized", "#4caf50", "#4CAF50"},
		{"Black", "#000000", "#303030"},
		{"White", "#FFFFFF", "#DCDCDC"},
		{"Saturated", "#FF8000", "#E38A30"},
		{"TooShort", "#FFF", "#FFF"},
		{"TooLong", "#FFFFFFF", "#FFFFFFF"},
		{"NotHex", "#GGGGGG", "#GGGGGG"},
		{"Empty", "", ""},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Normalize(tc.input))
		})
	}
}

func (suite *PaletteTestSuite) TestNormalizeOutputIsCanonicalHex() {
	canonical := regexp.MustCompile(`^#[0-9A-F]{6}$`)
	inputs := []string{"#000000", "#010203", "#FF00FF", "#7f7f7f", "#abcdef", "#FEFEFE", "#00ff01", "#607D8B"}

	for _, input := range inputs {
		output := Normalize(input)
		assert.Regexp(suite.T(), canonical, output, "input %s", input)
		assert.Equal(suite.T(), output, Normalize(input), "normalization must be stable for %s", input)
	}
}

func (suite *PaletteTestSuite) TestCorrectedChannelsStayInRange() {
	for _, input := range []string{"#000000", "#FFFFFF", "#FF0001", "#0100FF", "#000001"} {
		r, g, b, ok := parseHex(Normalize(input))
		assert.True(suite.T(), ok)
		for _, c := range []float64{r, g, b} {
			assert.GreaterOrEqual(suite.T(), c, minChannel)
			assert.LessOrEqual(suite.T(), c, maxChannel)
		}
	}
}
