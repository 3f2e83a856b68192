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
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vtomdoc/vtomdoc/internal/export"
)

func newLinksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "links <file> <application>",
		Short: "List the job to job links inside one application",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := readExport(args[0])
			if err != nil {
				return err
			}
			doc, validation := export.ValidateDocument(content)
			if !validation.Valid {
				return fmt.Errorf("%s: %s", args[0], validation.Error)
			}

			links := export.NewReader(doc).JobLinksFor(args[1])
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(links)
		},
	}
}
