package main

import (
	"log"

	"support-chat-backend/internal/api"
	"support-chat-backend/internal/api/router"
	"support-chat-backend/internal/database"
	"support-chat-backend/internal/env"
	"support-chat-backend/internal/llm"
	"support-chat-backend/internal/queue"
	"support-chat-backend/internal/service/faq"
	"support-chat-backend/internal/service/generator"
	"support-chat-backend/internal/service/history"
	"support-chat-backend/internal/service/intent"
	"support-chat-backend/internal/service/orchestrator"
	"support-chat-backend/internal/service/orders"
	"support-chat-backend/internal/service/ticket"
	"support-chat-backend/internal/service/validator"
)

func main() {
	env.MustHave(env.Required()...)

	queueManager := queue.NewRequestQueueManager(10, 10)
	db, err := database.NewDatabase()
	if err != nil {
		log.Fatalf("db init failed: %v", err)
	}

	ai := llm.NewClient()
	faqService := faq.New(ai)

	pipeline := orchestrator.New(orchestrator.Deps{
		Store:      history.New(db),
		Classifier: intent.New(ai),
		Orders:     orders.New(),
		FAQ:        faqService,
		Tickets:    ticket.New(),
		Generator:  generator.New(),
		Validator:  validator.New(ai),
	}, orchestrator.ConfigFromEnv())

	server := api.NewAPIServer(
		env.GetOrDefault(env.ListenAddr, ":8080"),
		queueManager,
		db,
		router.UtilsRoutes("/api/v1"),
		router.ChatRoutes("/api/v1/chat", pipeline),
		router.FAQRoutes("/api/v1/chat", faqService),
	)

	server.Run()
}
