package packet

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

const kindKey = "kind"

// MarshalYAML encodes a packet as YAML mapping with an additional "kind" key.
func MarshalYAML(p Packet) ([]byte, error) {
	node, err := toNode(p)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(node)
}

func toNode(p Packet) (*yaml.Node, error) {
	node := new(yaml.Node)
	if err := node.Encode(p); err != nil {
		return nil, fmt.Errorf("error encoding %s packet: %w", p.Kind(), err)
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%s packet did not encode to a mapping", p.Kind())
	}
	key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: kindKey}
	val := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: p.Kind().String()}
	node.Content = append([]*yaml.Node{key, val}, node.Content...)
	return node, nil
}

// UnmarshalYAML decodes a packet encoded by MarshalYAML.
func UnmarshalYAML(data []byte) (Packet, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, errors.New("empty packet document")
	}
	return fromNode(doc.Content[0])
}

func fromNode(node *yaml.Node) (Packet, error) {
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: packet must be a mapping", node.Line)
	}
	var kindNode *yaml.Node
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == kindKey {
			kindNode = node.Content[i+1]
			break
		}
	}
	if kindNode == nil {
		return nil, fmt.Errorf("line %d: missing %q key", node.Line, kindKey)
	}
	var k Kind
	if err := k.UnmarshalText([]byte(kindNode.Value)); err != nil {
		return nil, fmt.Errorf("line %d: %w", kindNode.Line, err)
	}
	p, err := New(k)
	if err != nil {
		return nil, err
	}
	if err = node.Decode(p); err != nil {
		return nil, fmt.Errorf("error decoding %s packet: %w", k, err)
	}
	return p, nil
}
