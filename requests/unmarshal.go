package requests

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/brettbedarf/pycommander"
	"gopkg.in/yaml.v3"
)

// GetNodeType extracts the node type from JSON without full unmarshaling
func GetNodeType(data []byte) (pycommander.NodeCreateRequestType, error) {
	var meta struct {
		Type pycommander.NodeCreateRequestType `json:"type"`
	}
	if err := json.Unmarshal(data, &meta); err != nil {
		return "", err
	}
	return meta.Type, nil
}

// UnmarshalFileRequest handles a single JSON file entry
func UnmarshalFileRequest(data []byte) (*pycommander.FileCreateRequest, error) {
	var dto NodeRequestDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil, err
	}
	return convertFileDTO(dto), nil
}

// UnmarshalDirRequest handles a single JSON directory entry
func UnmarshalDirRequest(data []byte) (*pycommander.DirCreateRequest, error) {
	var dto NodeRequestDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil, err
	}
	return convertDirDTO(dto), nil
}

// UnmarshalNodes decodes a JSON array of node entries, preserving order
func UnmarshalNodes(data []byte) ([]pycommander.NodeRequestor, error) {
	var rawNodes []json.RawMessage
	if err := json.Unmarshal(data, &rawNodes); err != nil {
		return nil, fmt.Errorf("failed to unmarshal nodes: %w", err)
	}

	reqs := make([]pycommander.NodeRequestor, 0, len(rawNodes))
	for i, rawNode := range rawNodes {
		nodeType, err := GetNodeType(rawNode)
		if err != nil {
			return nil, fmt.Errorf("node %d: %w", i, err)
		}

		var req pycommander.NodeRequestor
		switch nodeType {
		case pycommander.FileNodeType:
			req, err = UnmarshalFileRequest(rawNode)
		case pycommander.DirNodeType:
			req, err = UnmarshalDirRequest(rawNode)
		default:
			return nil, fmt.Errorf("node %d: unknown node type: %q", i, nodeType)
		}
		if err != nil {
			return nil, fmt.Errorf("node %d: %w", i, err)
		}
		reqs = append(reqs, req)
	}
	return reqs, nil
}

// UnmarshalNodesYAML is [UnmarshalNodes] for a YAML sequence
func UnmarshalNodesYAML(data []byte) ([]pycommander.NodeRequestor, error) {
	var dtos []NodeRequestDTO
	if err := yaml.Unmarshal(data, &dtos); err != nil {
		return nil, fmt.Errorf("failed to unmarshal nodes: %w", err)
	}
	return convertDTOs(dtos)
}

// LoadNodesFile reads a nodes file. Supports both YAML (.yaml, .yml) and
// JSON (.json) formats.
func LoadNodesFile(path string) ([]pycommander.NodeRequestor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return UnmarshalNodesYAML(data)
	case ".json":
		return UnmarshalNodes(data)
	default:
		return nil, fmt.Errorf("unknown nodes file extension: %s", path)
	}
}

func convertDTOs(dtos []NodeRequestDTO) ([]pycommander.NodeRequestor, error) {
	reqs := make([]pycommander.NodeRequestor, 0, len(dtos))
	for i, dto := range dtos {
		switch dto.Type {
		case pycommander.FileNodeType:
			reqs = append(reqs, convertFileDTO(dto))
		case pycommander.DirNodeType:
			reqs = append(reqs, convertDirDTO(dto))
		default:
			return nil, fmt.Errorf("node %d: unknown node type: %q", i, dto.Type)
		}
	}
	return reqs, nil
}

func convertFileDTO(dto NodeRequestDTO) *pycommander.FileCreateRequest {
	return &pycommander.FileCreateRequest{
		NodeRequest: pycommander.NodeRequest{Path: dto.Path, Type: pycommander.FileNodeType},
		Content:     valueOrDefault(dto.Content, ""),
	}
}

func convertDirDTO(dto NodeRequestDTO) *pycommander.DirCreateRequest {
	return &pycommander.DirCreateRequest{
		NodeRequest: pycommander.NodeRequest{Path: dto.Path, Type: pycommander.DirNodeType},
	}
}

func valueOrDefault[T any](ptr *T, defaultVal T) T {
	if ptr != nil {
		return *ptr
	}
	return defaultVal
}
