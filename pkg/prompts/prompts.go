package prompts

import (
	"fmt"
	"os"
	"strings"

	"github.com/Chilluba/gemini-cli/pkg/utils"
)

// Message represents a single message in a chat-like conversation with the LLM.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

const editSystemMessage = `You are an expert software engineer. You propose precise, line-addressed edits to source files.
Respond with ONLY a raw JSON object, without any markdown formatting, in exactly this shape:
{
  "language": "<language tag>",
  "complexity": <integer 1-10>,
  "suggestions": [
    {
      "originalLines": ["<exact current content of the target lines>"],
      "suggestedLines": ["<replacement lines>"],
      "startLine": <1-based inclusive start line in the original file>,
      "endLine": <1-based inclusive end line in the original file>,
      "reasoning": "<why this change>",
      "confidence": <integer 0-100>
    }
  ],
  "risks": ["<risk>"],
  "dependencies": ["<affected dependency>"]
}
Line numbers always refer to the original, unmodified file. Do not include any text outside the JSON object.`

const analysisSystemMessage = `You are an expert code reviewer. Analyze the provided file and respond with ONLY a raw JSON object, without any markdown formatting, in exactly this shape:
{
  "issues": [
    {"line": <int>, "column": <int>, "severity": "error|warning|info", "message": "<text>", "type": "security|performance|maintainability|style|bug"}
  ],
  "suggestions": [
    {"line": <int>, "type": "optimization|refactor|documentation|test", "description": "<text>", "suggestedCode": "<optional replacement>"}
  ],
  "metrics": {
    "complexity": <integer 1-10>,
    "maintainabilityIndex": <integer 0-100>,
    "performance": "excellent|good|fair|poor",
    "security": "secure|moderate|vulnerable"
  }
}
Do not include any text outside the JSON object.`

// BuildEditMessages constructs the oracle request for a single-file edit.
// Context files that cannot be read are skipped with a warning; they never
// fail the request.
func BuildEditMessages(filename, content, languageTag, instruction string, contextFiles []string, logger *utils.Logger) []Message {
	var sb strings.Builder

	fmt.Fprintf(&sb, "User instruction: %s\n\n", instruction)
	fmt.Fprintf(&sb, "Target file: %s (language: %s)\n", filename, languageTag)
	fmt.Fprintf(&sb, "```%s\n%s\n```\n", languageTag, content)

	for _, ctxFile := range contextFiles {
		ctxContent, err := os.ReadFile(ctxFile)
		if err != nil {
			if logger != nil {
				logger.LogProcessStep(fmt.Sprintf("Warning: could not read context file '%s', skipping: %v", ctxFile, err))
			}
			continue
		}
		fmt.Fprintf(&sb, "\nAdditional context from %s:\n```\n%s\n```\n", ctxFile, string(ctxContent))
	}

	return []Message{
		{Role: "system", Content: editSystemMessage},
		{Role: "user", Content: sb.String()},
	}
}

// BuildAnalysisMessages constructs the oracle request for a quality review of
// one file. fullAnalysis widens the requested commentary without changing the
// response shape.
func BuildAnalysisMessages(filename, content, languageTag string, fullAnalysis bool) []Message {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Review the following %s file for issues and improvements: %s\n", languageTag, filename)
	sb.WriteString("Cover security, performance, maintainability, style, and bugs.\n")
	if fullAnalysis {
		sb.WriteString("Also comment on architecture and test coverage where relevant.\n")
	}
	fmt.Fprintf(&sb, "```%s\n%s\n```\n", languageTag, content)

	return []Message{
		{Role: "system", Content: analysisSystemMessage},
		{Role: "user", Content: sb.String()},
	}
}
