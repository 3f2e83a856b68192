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

package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type UUIDUtilTestSuite struct {
	suite.Suite
}

func TestUUIDUtilSuite(t *testing.T) {
	suite.Run(t, new(UUIDUtilTestSuite))
}

func (suite *UUIDUtilTestSuite) TestGenerateUUID() {
	id := GenerateUUID()

	uuidPattern := regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)
	assert.True(suite.T(), uuidPattern.MatchString(id), "import ids should be version 4 UUIDs")
}

func (suite *UUIDUtilTestSuite) TestGenerateUUIDUniqueness() {
	seen := make(map[string]struct{}, 100)
	for i := 0; i < 100; i++ {
		seen[GenerateUUID()] = struct{}{}
	}
	assert.Len(suite.T(), seen, 100)
}
