package llm

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/agentprobe/agentprobe/pkg/config"
)

// sidecarMethod is the full method path of the completion RPC exposed by the
// LLM sidecar process. Request and response are google.protobuf.Struct so
// the sidecar can evolve its payload without a stub regeneration step on
// this side; field names below are the contract.
const sidecarMethod = "/agentprobe.llm.v1.LLMService/Complete"

// sidecarClient delegates completions to a co-located gRPC service, for
// deployments that route all model traffic through one egress point.
type sidecarClient struct {
	conn         *grpc.ClientConn
	defaultModel string
}

func newSidecarClient(cfg config.LLMConfig) (*sidecarClient, error) {
	conn, err := grpc.NewClient(cfg.SidecarAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to LLM sidecar at %s: %w", cfg.SidecarAddr, err)
	}
	return &sidecarClient{
		conn:         conn,
		defaultModel: cfg.DefaultModel,
	}, nil
}

// Ready reports whether the sidecar's gRPC health endpoint answers SERVING.
func (c *sidecarClient) Ready(ctx context.Context) error {
	resp, err := healthpb.NewHealthClient(c.conn).Check(ctx, &healthpb.HealthCheckRequest{})
	if err != nil {
		return &LLMError{Provider: "sidecar", Message: "health check failed", Err: err}
	}
	if resp.Status != healthpb.HealthCheckResponse_SERVING {
		return &LLMError{Provider: "sidecar", Message: fmt.Sprintf("sidecar reported status %s", resp.Status)}
	}
	return nil
}

func (c *sidecarClient) Complete(ctx context.Context, req Request) (*Response, error) {
	in, err := structpb.NewStruct(encodeSidecarRequest(req, c.defaultModel))
	if err != nil {
		return nil, &LLMError{Provider: "sidecar", Message: "failed to encode request", Err: err}
	}

	out := &structpb.Struct{}
	if err := c.conn.Invoke(ctx, sidecarMethod, in, out); err != nil {
		if st, ok := status.FromError(err); ok {
			return nil, &LLMError{Provider: "sidecar", Message: st.Message(), Err: err}
		}
		return nil, &LLMError{Provider: "sidecar", Message: "completion request failed", Err: err}
	}

	return decodeSidecarResponse(out.AsMap()), nil
}

func (c *sidecarClient) Close() error {
	return c.conn.Close()
}

// encodeSidecarRequest flattens the request to structpb-compatible values:
// only map[string]interface{}, []interface{}, and scalars.
func encodeSidecarRequest(req Request, defaultModel string) map[string]interface{} {
	model := req.Model
	if model == "" {
		model = defaultModel
	}
	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}

	messages := make([]interface{}, 0, len(req.Messages))
	for _, msg := range req.Messages {
		m := map[string]interface{}{
			"role":    string(msg.Role),
			"content": msg.Content,
		}
		if msg.ToolCallID != "" {
			m["tool_call_id"] = msg.ToolCallID
		}
		if msg.ToolName != "" {
			m["tool_name"] = msg.ToolName
		}
		if len(msg.ToolCalls) > 0 {
			calls := make([]interface{}, 0, len(msg.ToolCalls))
			for _, tc := range msg.ToolCalls {
				calls = append(calls, map[string]interface{}{
					"id":        tc.ID,
					"name":      tc.Name,
					"arguments": sanitizeForStruct(tc.Arguments),
				})
			}
			m["tool_calls"] = calls
		}
		messages = append(messages, m)
	}

	out := map[string]interface{}{
		"model":       model,
		"system":      req.System,
		"messages":    messages,
		"temperature": req.Temperature,
		"max_tokens":  maxTokens,
	}
	if req.ForceTool != "" {
		out["force_tool"] = req.ForceTool
	}
	if len(req.Tools) > 0 {
		tools := make([]interface{}, 0, len(req.Tools))
		for _, t := range req.Tools {
			tools = append(tools, map[string]interface{}{
				"name":        t.Name,
				"description": t.Description,
				"parameters":  sanitizeForStruct(t.Parameters),
			})
		}
		out["tools"] = tools
	}
	return out
}

// sanitizeForStruct round-trips a map through JSON so every nested value is a
// type structpb.NewStruct accepts. Maps built from decoded JSON pass through
// unchanged; maps built in code may hold ints or typed slices that would
// otherwise be rejected.
func sanitizeForStruct(m map[string]interface{}) map[string]interface{} {
	if m == nil {
		return map[string]interface{}{}
	}
	raw, err := json.Marshal(m)
	if err != nil {
		return map[string]interface{}{}
	}
	var out map[string]interface{}
	if err := json.Unmarshal(raw, &out); err != nil || out == nil {
		return map[string]interface{}{}
	}
	return out
}

func decodeSidecarResponse(m map[string]interface{}) *Response {
	resp := &Response{}
	if s, ok := m["content"].(string); ok {
		resp.Content = s
	}
	if s, ok := m["stop_reason"].(string); ok {
		resp.StopReason = s
	}
	if usage, ok := m["usage"].(map[string]interface{}); ok {
		if v, ok := usage["input_tokens"].(float64); ok {
			resp.Usage.InputTokens = int(v)
		}
		if v, ok := usage["output_tokens"].(float64); ok {
			resp.Usage.OutputTokens = int(v)
		}
	}
	calls, ok := m["tool_calls"].([]interface{})
	if !ok {
		return resp
	}
	for _, raw := range calls {
		call, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		tc := ToolCall{Arguments: NormalizeArguments(call["arguments"])}
		if s, ok := call["id"].(string); ok {
			tc.ID = s
		}
		if s, ok := call["name"].(string); ok {
			tc.Name = s
		}
		resp.ToolCalls = append(resp.ToolCalls, tc)
	}
	return resp
}
