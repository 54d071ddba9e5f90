/*
Package advisor requests free-text financial advice from a remote text generator.

A Service wraps one Generator (HuggingFace inference, OpenAI, Anthropic, Ollama
or Gemini) and never fails: transport errors, non-2xx responses and empty or
malformed payloads all produce a degraded domain.Result holding canned fallback
text chosen from the prompt.

	svc := advisor.New(advisor.NewHuggingFace(advisor.HuggingFaceConfig{}),
		advisor.WithCache(advisor.NewMemoryCache(10*time.Minute)),
		advisor.WithLogger(logger),
	)
	reply := <-svc.Request(ctx, domain.Prompt{Purpose: domain.ComputePlan, Text: prompt})
	if reply.Degraded() {
		// reply.Value() is fallback text, reply.Cause() says why
	}
*/
package advisor
