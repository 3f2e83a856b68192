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

package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ubuntu/decorate"

	"github.com/vtomdoc/vtomdoc/internal/importer"
	"github.com/vtomdoc/vtomdoc/internal/system/error/serviceerror"
)

// readExport loads an export file from disk.
func readExport(path string) (content []byte, err error) {
	defer decorate.OnError(&err, "could not read export %q", path)

	content, err = os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	if len(content) == 0 {
		return nil, errors.New("file is empty")
	}
	return content, nil
}

// transformExport loads and normalizes an export file.
func transformExport(path string) (*importer.TransformResult, error) {
	content, err := readExport(path)
	if err != nil {
		return nil, err
	}
	result, svcErr := importer.Transform(content)
	if svcErr != nil {
		return nil, serviceErr(svcErr)
	}
	return result, nil
}

func serviceErr(svcErr *serviceerror.ServiceError) error {
	return fmt.Errorf("%s: %s", svcErr.Error, svcErr.ErrorDescription)
}
