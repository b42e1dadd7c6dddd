package router

import (
	"net/http"

	"support-chat-backend/internal/api"
	"support-chat-backend/internal/api/endpoints"
)

func ChatRoutes(prefix string, processor endpoints.MessageProcessor) api.RouteRegistrar {
	return func(mux *http.ServeMux, s *api.APIServer) {
		chatEndpoints := endpoints.NewChatEndpoints(processor)
		mux.HandleFunc(prefix+"/message", s.MakeHTTPHandleFunc(chatEndpoints.Messages))
	}
}

func FAQRoutes(prefix string, indexer endpoints.FAQIndexer) api.RouteRegistrar {
	return func(mux *http.ServeMux, s *api.APIServer) {
		faqEndpoints := endpoints.NewFAQEndpoints(indexer)
		mux.HandleFunc(prefix+"/faqs", s.MakeHTTPHandleFunc(faqEndpoints.FAQs))
	}
}
