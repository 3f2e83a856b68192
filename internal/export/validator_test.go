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

type ValidatorTestSuite struct {
	suite.Suite
}

func TestValidatorSuite(t *testing.T) {
	suite.Run(t, new(ValidatorTestSuite))
}

func (suite *ValidatorTestSuite) TestValidate() {
	testCases := []struct {
		name         string
		content      string
		expectValid  bool
		expectedKind ValidationErrorKind
	}{
		{"NotXML", "<NotXml", false, KindStructural},
		{"Empty", "", false, KindStructural},
		{"MismatchedTags", "<Domain><Environments></Domain>", false, KindStructural},
		{"MissingMarker", "<Root/>", false, KindMissingMarker},
		{"MarkerOnly", "<Domain/>", true, ""},
		{"WithDeclaration", `<?xml version="1.0"?><Domain name="x"></Domain>`, true, ""},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			result := Validate([]byte(tc.content))

			assert.Equal(t, tc.expectValid, result.Valid)
			assert.Equal(t, tc.expectedKind, result.Kind)
			if tc.expectValid {
				assert.Empty(t, result.Error)
			} else {
				assert.NotEmpty(t, result.Error)
			}
		})
	}
}

func (suite *ValidatorTestSuite) TestErrorsAreDistinct() {
	structural := Validate([]byte("<NotXml"))
	missing := Validate([]byte("<Root/>"))

	assert.NotEqual(suite.T(), structural.Error, missing.Error)
	assert.Contains(suite.T(), structural.Error, "invalid XML format")
	assert.Contains(suite.T(), missing.Error, "<Domain>")
}

func (suite *ValidatorTestSuite) TestValidateDocumentReturnsDocument() {
	doc, result := ValidateDocument([]byte("<Domain/>"))
	assert.True(suite.T(), result.Valid)
	assert.NotNil(suite.T(), doc)

	doc, result = ValidateDocument([]byte("<Root/>"))
	assert.False(suite.T(), result.Valid)
	assert.Nil(suite.T(), doc)
}
