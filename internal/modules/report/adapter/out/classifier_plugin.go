package out

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"time"

	hclog "github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-plugin"

	reportrpc "civiq/internal/modules/report/adapter/out/rpc"
	"civiq/internal/modules/report/domain"
	reportout "civiq/internal/modules/report/port/out"
)

const (
	pluginStartTimeout = 3 * time.Second
	pluginCallTimeout  = 5 * time.Second
)

// PluginClassifier runs the configured classifier binary as a go-plugin
// child process for each call. The capability is advisory; callers are
// expected to drop its errors.
type PluginClassifier struct {
	binary string
}

func NewPluginClassifier(binary string) reportout.Classifier {
	return &PluginClassifier{binary: binary}
}

func (c *PluginClassifier) Classify(ctx context.Context, photoName string, photo []byte) (domain.Category, error) {
	if c.binary == "" {
		return "", fmt.Errorf("classifier plugin is not configured")
	}
	client, closeFn, err := c.connect()
	if err != nil {
		return "", err
	}
	defer closeFn()

	callCtx, cancel := callContext(ctx, pluginCallTimeout)
	defer cancel()
	response, err := client.Classify(callCtx, &reportrpc.ClassifyRequest{PhotoName: photoName, Photo: photo})
	if err != nil {
		return "", fmt.Errorf("classify: %w", err)
	}
	return domain.Category(response.Category), nil
}

func (c *PluginClassifier) connect() (reportrpc.ClassifierClient, func(), error) {
	client := plugin.NewClient(&plugin.ClientConfig{
		HandshakeConfig:  reportrpc.HandshakeConfig,
		AllowedProtocols: []plugin.Protocol{plugin.ProtocolGRPC},
		Plugins:          reportrpc.PluginMap(nil),
		Cmd:              exec.Command(c.binary),
		Managed:          true,
		StartTimeout:     pluginStartTimeout,
		Logger:           hclog.New(&hclog.LoggerOptions{Output: io.Discard, Level: hclog.NoLevel}),
	})
	closeFn := func() { client.Kill() }

	rpcClient, err := client.Client()
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("start classifier plugin: %w", err)
	}
	raw, err := rpcClient.Dispense(reportrpc.PluginMapKey)
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("dispense classifier plugin: %w", err)
	}
	typed, ok := raw.(reportrpc.ClassifierClient)
	if !ok {
		closeFn()
		return nil, nil, fmt.Errorf("classifier rpc client type mismatch")
	}
	return typed, closeFn, nil
}

func callContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := parent.Deadline(); ok {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, timeout)
}
