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
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vtomdoc/vtomdoc/internal/export"
)

func newRawCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "raw <file>",
		Short: "Dump an export as a generic JSON tree",
		Long:  "Dump an export as a JSON tree where attributes are prefixed with @ and repeated elements become arrays.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := readExport(args[0])
			if err != nil {
				return err
			}
			doc, err := export.Parse(content)
			if err != nil {
				return fmt.Errorf("%s: invalid XML format: %w", args[0], err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), doc.JSON())
			return nil
		},
	}
}
