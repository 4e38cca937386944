package stages

import (
	"fmt"

	"github.com/prakshal-jain/vaultsetup/internal/provisioning"
)

// ExampleScript writes a runnable browser-use example onto the computer
// and installs the LLM client library into the virtual environment. It
// only runs after a successful browser-use install.
type ExampleScript struct{}

// NewExampleScript creates the example script stage.
func NewExampleScript() *ExampleScript {
	return &ExampleScript{}
}

// Name implements the provisioning.Stage interface.
func (s *ExampleScript) Name() string {
	return "example-script"
}

// script renders the example. The optional LLM credential is baked in as
// the environment variable's default so the script works out of the box
// on the computer.
func (s *ExampleScript) script(anthropicKey string) string {
	return fmt.Sprintf(`#!/usr/bin/env python3
'''
Browser-Use Example Script

Documentation: https://docs.browser-use.com
'''

import os
import asyncio
from browser_use import Agent
from langchain_anthropic import ChatAnthropic


def make_llm():
    return ChatAnthropic(
        model="claude-3-5-sonnet-20241022",
        api_key=os.environ.get("ANTHROPIC_API_KEY", %q),
        temperature=0,
    )


async def example_browser_use():
    agent = Agent(
        task="Navigate to https://example.com, find the main heading, and tell me what it says",
        llm=make_llm(),
        browser_config={"headless": False},
    )
    result = await agent.run()
    print(f"Task result: {result}")
    return result


async def example_search_task():
    agent = Agent(
        task="Search Google for 'browser-use python library' and summarize the first result",
        llm=make_llm(),
    )
    result = await agent.run()
    print(f"Search result: {result}")


if __name__ == "__main__":
    import sys

    if len(sys.argv) > 1 and sys.argv[1] == "search":
        asyncio.run(example_search_task())
    else:
        asyncio.run(example_browser_use())
`, anthropicKey)
}

// Run implements the provisioning.Stage interface.
func (s *ExampleScript) Run(ctx *provisioning.Context) error {
	if !ctx.Config.ExampleScriptEnabled() {
		return provisioning.Skip("example_script.enabled is false")
	}
	if !ctx.State.BrowserUseReady {
		return provisioning.Skip("browser-use install did not complete")
	}

	path := ctx.Config.ExampleScript.Path

	var key string
	if ctx.Creds != nil {
		key = ctx.Creds.AnthropicKey
	}
	write := fmt.Sprintf("cat > %s << 'EXAMPLE_EOF'\n%sEXAMPLE_EOF", path, s.script(key))
	result, err := run(ctx, write)
	if err != nil {
		return err
	}
	if !result.Ok() {
		return fmt.Errorf("failed to write example script: %s", result.Output)
	}

	result, err = run(ctx, "chmod +x "+path)
	if err != nil {
		return err
	}
	if !result.Ok() {
		return fmt.Errorf("failed to make example script executable: %s", result.Output)
	}

	// The example imports langchain_anthropic, which the install script
	// does not pull in.
	install, err := run(ctx, fmt.Sprintf("%s/bin/pip install langchain-anthropic", ctx.Config.BrowserUse.Venv))
	if err != nil {
		return err
	}
	if !install.Ok() {
		provisioning.LogWarning(ctx.Observer, s.Name(), "failed to install langchain-anthropic, the example needs it installed manually")
	}

	ctx.Observer.Printf("Example script created at %s", path)
	return nil
}
