package main

import (
	"context"
	"strings"

	reportrpc "civiq/internal/modules/report/adapter/out/rpc"

	"github.com/hashicorp/go-plugin"
)

// keywordRules maps filename hints to categories. First match wins.
var keywordRules = []struct {
	keywords []string
	category string
}{
	{keywords: []string{"trash", "garbage", "waste", "litter", "dump"}, category: "waste"},
	{keywords: []string{"smoke", "smog", "exhaust", "air"}, category: "air_pollution"},
	{keywords: []string{"sewage", "river", "lake", "drain", "water"}, category: "water_pollution"},
	{keywords: []string{"noise", "loud", "horn", "speaker"}, category: "noise_pollution"},
}

type server struct{}

func (s *server) GetMetadata(_ context.Context, _ *reportrpc.Empty) (*reportrpc.Metadata, error) {
	return &reportrpc.Metadata{Name: "classifier", Version: "1.0.0"}, nil
}

func (s *server) Classify(_ context.Context, in *reportrpc.ClassifyRequest) (*reportrpc.ClassifyResponse, error) {
	name := strings.ToLower(in.PhotoName)
	for _, rule := range keywordRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(name, keyword) {
				return &reportrpc.ClassifyResponse{Category: rule.category, Confidence: 0.6}, nil
			}
		}
	}
	return &reportrpc.ClassifyResponse{Category: "other", Confidence: 0.1}, nil
}

func main() {
	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: reportrpc.HandshakeConfig,
		Plugins:         reportrpc.PluginMap(&server{}),
		GRPCServer:      plugin.DefaultGRPCServer,
	})
}
