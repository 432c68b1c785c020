package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/abdulachik/hotboard/internal/chat"
	"github.com/abdulachik/hotboard/internal/config"
	"github.com/spf13/cobra"
)

var (
	chatModel  string
	chatStream bool
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat",
	Long: `Start an interactive conversation with the OpenAI Responses API.
The conversation continues server-side through the previous response ID.

Commands inside the chat:
  quit, exit, 退出   Leave
  new, 新对话        Start a new conversation`,
	RunE: runChat,
}

func init() {
	chatCmd.Flags().StringVar(&chatModel, "model", "", "Model to use (default: OPENAI_MODEL)")
	chatCmd.Flags().BoolVar(&chatStream, "stream", false, "Print replies as they are generated")
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if chatModel != "" {
		cfg.OpenAIModel = chatModel
	}

	if err := cfg.ValidateForChat(); err != nil {
		if errors.Is(err, config.ErrMissingCredential) {
			printCredentialHelp()
		}
		return fmt.Errorf("validate config: %w", err)
	}

	responder := chat.NewOpenAIResponder(chat.OpenAIConfig{
		APIKey:  cfg.OpenAIAPIKey,
		BaseURL: cfg.OpenAIBaseURL,
		Stream:  chatStream,
	})

	repl := chat.NewREPL(chat.REPLConfig{
		Responder: responder,
		Session:   chat.NewSession(cfg.OpenAIModel),
		In:        os.Stdin,
		Out:       os.Stdout,
		Stream:    chatStream,
	})

	return repl.Run(cmd.Context())
}

func printCredentialHelp() {
	fmt.Println("错误: 未找到OPENAI_API_KEY环境变量")
	fmt.Println("请设置您的OpenAI API密钥:")
	fmt.Println("方法1 - 环境变量:")
	fmt.Println("  Linux/Mac: export OPENAI_API_KEY='your-api-key-here'")
	fmt.Println("  Windows: set OPENAI_API_KEY=your-api-key-here")
	fmt.Println("方法2 - .env文件:")
	fmt.Println("  创建.env文件并添加: OPENAI_API_KEY=your-api-key-here")
	fmt.Println("  (确保.env文件在.gitignore中)")
}
