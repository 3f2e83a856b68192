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

import "fmt"

const commentObjectType = "com"

// graphNode is a graph node eligible as an annotation.
type graphNode struct {
	x, y  int
	label string
	props Properties
}

// graphNodes returns the positioned comment nodes of every environment graph.
func (r *Reader) graphNodes(step string) []graphNode {
	nodes := []graphNode{}
	for i, env := range r.environments(step) {
		envPath := fmt.Sprintf("Domain.Environments.Environment[%d]", i)

		graph, present := env["Graph"]
		if !present {
			continue
		}
		graphElement, ok := asMap(graph)
		if !ok {
			r.record(step, envPath+".Graph", fmt.Sprintf("expected an element, got %T", graph))
			continue
		}

		for j, item := range asList(graphElement["Node"]) {
			path := fmt.Sprintf("%s.Graph.Node[%d]", envPath, j)
			node, ok := asMap(item)
			if !ok {
				r.record(step, path, fmt.Sprintf("expected an element, got %T", item))
				continue
			}

			objectType := attr(node, "objectType", "")
			if objectType != "" && objectType != commentObjectType {
				continue
			}
			if !hasAttr(node, "x") || !hasAttr(node, "y") {
				continue
			}
			x, y, ok := position(node)
			if !ok {
				r.record(step, path, "non numeric coordinates")
				continue
			}

			nodes = append(nodes, graphNode{
				x:     x,
				y:     y,
				label: attr(node, "label", ""),
				props: foldProperties(node),
			})
		}
	}
	return nodes
}

// TrafficLights returns the checkpoint markers of the graph.
func (r *Reader) TrafficLights() []TrafficLight {
	return runStep(r, StepTrafficLights, func() []TrafficLight {
		lights := []TrafficLight{}
		for _, node := range r.graphNodes(StepTrafficLights) {
			if node.props[propertyIcon] != trafficLightIcon {
				continue
			}
			lights = append(lights, TrafficLight{
				X:      node.x,
				Y:      node.y,
				Width:  node.props.Int(propertyWidth, defaultTrafficLightWidth),
				Height: node.props.Int(propertyHeight, defaultTrafficHeight),
				Label:  node.label,
			})
		}
		return lights
	})
}

// Comments returns the labelled free text annotations of the graph.
func (r *Reader) Comments() []Comment {
	return runStep(r, StepComments, func() []Comment {
		comments := []Comment{}
		for _, node := range r.graphNodes(StepComments) {
			if node.props[propertyIcon] == trafficLightIcon || node.label == "" {
				continue
			}
			comments = append(comments, Comment{
				X:          node.x,
				Y:          node.y,
				Width:      node.props.Int(propertyWidth, defaultCommentWidth),
				Height:     node.props.Int(propertyHeight, defaultCommentHeight),
				Label:      node.label,
				Foreground: node.props.String(propertyForeground, defaultForeground),
				Font:       ParseFontSpec(node.props.String(propertyFont, defaultFont)),
			})
		}
		return comments
	})
}
