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
	"fmt"
	"strings"
)

const (
	linkTypeStrong      = "E"
	linkTypeConditional = "M"
	jobPathSegments     = 3
)

// linkEndpoints holds the split parent and child paths of a link element.
type linkEndpoints struct {
	parent   []string
	child    []string
	linkType string
}

func (r *Reader) linkElements(step string) []linkEndpoints {
	endpoints := []linkEndpoints{}
	for i, element := range r.elements(step, "Domain.Links.Link", linksPath) {
		parent := attr(element, "parent", "")
		child := attr(element, "child", "")
		if parent == "" || child == "" {
			r.record(step, fmt.Sprintf("Domain.Links.Link[%d]", i), "link without parent or child")
			continue
		}
		endpoints = append(endpoints, linkEndpoints{
			parent:   strings.Split(parent, "/"),
			child:    strings.Split(child, "/"),
			linkType: linkType(attr(element, "type", "")),
		})
	}
	return endpoints
}

// linkType keeps strong dependencies and treats anything else as conditional.
func linkType(value string) string {
	if value == linkTypeStrong {
		return linkTypeStrong
	}
	return linkTypeConditional
}

// owner returns the application segment of an "<environment>/<application>/<job>" path.
func owner(segments []string) string {
	if len(segments) < 2 {
		return ""
	}
	return segments[1]
}

// Links returns the dependencies whose endpoints belong to two different applications.
func (r *Reader) Links() []AppLink {
	return runStep(r, StepLinks, func() []AppLink {
		links := []AppLink{}
		for _, link := range r.linkElements(StepLinks) {
			from, to := owner(link.parent), owner(link.child)
			if from == "" || to == "" || from == to {
				continue
			}
			links = append(links, AppLink{From: from, To: to, Type: link.linkType})
		}
		return links
	})
}

// JobLinks returns the dependencies between two jobs of the same application. Both
// endpoints must be fully qualified job paths.
func (r *Reader) JobLinks() []JobLink {
	return runStep(r, StepJobLinks, func() []JobLink {
		links := []JobLink{}
		for _, link := range r.linkElements(StepJobLinks) {
			if len(link.parent) != jobPathSegments || len(link.child) != jobPathSegments {
				continue
			}
			app := owner(link.parent)
			if app == "" || app != owner(link.child) {
				continue
			}
			links = append(links, JobLink{
				Application: app,
				From:        link.parent[2],
				To:          link.child[2],
				Type:        link.linkType,
			})
		}
		return links
	})
}

// JobLinksFor returns the job links of one application.
func (r *Reader) JobLinksFor(application string) []JobLink {
	links := []JobLink{}
	for _, link := range r.JobLinks() {
		if link.Application == application {
			links = append(links, link)
		}
	}
	return links
}
