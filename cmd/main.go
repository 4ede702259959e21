package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	deleteRuleHandler "github.com/m04kA/astroya-scheduling/internal/api/handlers/delete_rule"
	getAvailableSlotsHandler "github.com/m04kA/astroya-scheduling/internal/api/handlers/get_available_slots"
	getMonthlySummaryHandler "github.com/m04kA/astroya-scheduling/internal/api/handlers/get_monthly_summary"
	listRulesHandler "github.com/m04kA/astroya-scheduling/internal/api/handlers/list_rules"
	resetDataHandler "github.com/m04kA/astroya-scheduling/internal/api/handlers/reset_data"
	setRuleHandler "github.com/m04kA/astroya-scheduling/internal/api/handlers/set_rule"
	submitBriefingHandler "github.com/m04kA/astroya-scheduling/internal/api/handlers/submit_briefing"
	submitConsultationHandler "github.com/m04kA/astroya-scheduling/internal/api/handlers/submit_consultation"
	"github.com/m04kA/astroya-scheduling/internal/api/middleware"
	"github.com/m04kA/astroya-scheduling/internal/config"
	"github.com/m04kA/astroya-scheduling/internal/integrations/gcalendar"
	"github.com/m04kA/astroya-scheduling/internal/integrations/leadsheet"
	"github.com/m04kA/astroya-scheduling/internal/integrations/mailer"
	availabilityService "github.com/m04kA/astroya-scheduling/internal/service/availability"
	rulesService "github.com/m04kA/astroya-scheduling/internal/service/rules"
	bookSlotUC "github.com/m04kA/astroya-scheduling/internal/usecase/book_slot"
	getAvailableSlotsUC "github.com/m04kA/astroya-scheduling/internal/usecase/get_available_slots"
	getMonthlySummaryUC "github.com/m04kA/astroya-scheduling/internal/usecase/get_monthly_summary"
	submitBriefingUC "github.com/m04kA/astroya-scheduling/internal/usecase/submit_briefing"
	submitConsultationUC "github.com/m04kA/astroya-scheduling/internal/usecase/submit_consultation"
	"github.com/m04kA/astroya-scheduling/pkg/logger"
	"github.com/m04kA/astroya-scheduling/pkg/metrics"
)

const rateLimiterTTL = 10 * time.Minute

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting astroya-scheduling...")
	log.Info("Configuration loaded from config.toml (storage=%s, mail=%s)", cfg.Storage.Driver, cfg.Mail.Driver)

	location, err := cfg.Server.Location()
	if err != nil {
		log.Fatal("Failed to load timezone %s: %v", cfg.Server.Timezone, err)
	}

	ctx := context.Background()

	// Инициализируем метрики (если включены).
	// Необязательные зависимости передаются как интерфейсы: nil-указатель в интерфейсе не равен nil
	var (
		metricsCollector *metrics.Metrics
		bookingMetrics   bookSlotUC.MetricsRecorder
		consultMetrics   submitConsultationUC.MetricsRecorder
		briefingMetrics  submitBriefingUC.MetricsRecorder
	)
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		bookingMetrics = metricsCollector
		consultMetrics = metricsCollector
		briefingMetrics = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Хранилища
	st, err := openStores(ctx, cfg, metricsCollector, stopMetricsCh, log)
	if err != nil {
		log.Fatal("Failed to initialize storage: %v", err)
	}
	defer st.Close()

	// Сервисы
	var ruleOpts []rulesService.Option
	if len(st.resetters) > 0 {
		ruleOpts = append(ruleOpts, rulesService.WithResetters(st.resetters...))
	}
	rulesSvc := rulesService.NewService(st.rules, log, ruleOpts...)

	if cfg.Seed.File != "" {
		seed, err := rulesService.LoadSeedFile(cfg.Seed.File)
		if err != nil {
			log.Fatal("Failed to load seed file %s: %v", cfg.Seed.File, err)
		}

		var applied int
		if cfg.Storage.Driver == config.StorageMemory {
			applied, err = rulesSvc.Seed(ctx, seed)
		} else {
			applied, err = rulesSvc.SeedMissing(ctx, seed)
		}
		if err != nil {
			log.Fatal("Failed to apply seed rules: %v", err)
		}
		log.Info("Seed rules applied: %d of %d (file=%s)", applied, len(seed), cfg.Seed.File)
	}

	availabilitySvc := availabilityService.NewService(rulesSvc, st.bookings, log)

	// Интеграции
	var mailSender submitConsultationUC.MailSender
	switch cfg.Mail.Driver {
	case config.MailSendGrid:
		mailSender = mailer.NewSendGridSender(cfg.Mail.SendGridKey, cfg.Mail.SendGridHost, log)
	default:
		mailSender = mailer.NewLogSender(log)
		log.Warn("Mail driver is %q, emails are only logged", cfg.Mail.Driver)
	}

	var calendarClient submitConsultationUC.CalendarClient
	if cfg.Calendar.Enabled {
		credentials, err := os.ReadFile(cfg.Calendar.CredentialsFile)
		if err != nil {
			log.Fatal("Failed to read calendar credentials %s: %v", cfg.Calendar.CredentialsFile, err)
		}
		client, err := gcalendar.NewClient(ctx, credentials, cfg.Calendar.CalendarID, cfg.Server.Timezone, log)
		if err != nil {
			log.Fatal("Failed to initialize Google Calendar client: %v", err)
		}
		calendarClient = client
		log.Info("Google Calendar sync enabled (calendar=%s)", cfg.Calendar.CalendarID)
	}

	var (
		consultLeads  submitConsultationUC.LeadForwarder
		briefingLeads submitBriefingUC.LeadForwarder
	)
	if cfg.Webhook.URL != "" {
		leads := leadsheet.NewClient(cfg.Webhook.URL, time.Duration(cfg.Webhook.Timeout)*time.Second, log)
		consultLeads = leads
		briefingLeads = leads
		log.Info("Lead webhook enabled (timeout=%ds)", cfg.Webhook.Timeout)
	}

	from := mailer.Address{Name: cfg.Mail.FromName, Email: cfg.Mail.FromEmail}
	operator := mailer.Address{Name: cfg.Mail.OperatorName, Email: cfg.Mail.OperatorEmail}

	// Use cases
	bookSlotUseCase := bookSlotUC.NewUseCase(availabilitySvc, st.bookings, bookingMetrics, log)

	submitConsultationUseCase := submitConsultationUC.NewUseCase(
		bookSlotUseCase,
		mailSender,
		calendarClient,
		consultLeads,
		consultMetrics,
		submitConsultationUC.Settings{
			From:      from,
			Operator:  operator,
			Location:  location,
			Duration:  time.Duration(cfg.Mail.DurationMin) * time.Minute,
			Place:     cfg.Mail.Place,
			UIDDomain: cfg.Mail.UIDDomain,
		},
		log,
	)

	submitBriefingUseCase := submitBriefingUC.NewUseCase(
		mailSender,
		briefingLeads,
		briefingMetrics,
		submitBriefingUC.Settings{
			From:     from,
			Operator: operator,
			Location: location,
		},
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(availabilitySvc, location, log)
	getMonthlySummaryUseCase := getMonthlySummaryUC.NewUseCase(availabilitySvc, log)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getMonthlySummary := getMonthlySummaryHandler.NewHandler(getMonthlySummaryUseCase, log)
	submitConsultation := submitConsultationHandler.NewHandler(submitConsultationUseCase, log)
	submitBriefing := submitBriefingHandler.NewHandler(submitBriefingUseCase, log)
	listRules := listRulesHandler.NewHandler(rulesSvc, log)
	setRule := setRuleHandler.NewHandler(rulesSvc, log)
	deleteRule := deleteRuleHandler.NewHandler(rulesSvc, log)
	resetData := resetDataHandler.NewHandler(rulesSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	// summary регистрируется раньше {date}, иначе "summary" попадет в шаблон даты
	api.HandleFunc("/availability/summary", getMonthlySummary.Handle).Methods(http.MethodGet)
	api.HandleFunc("/availability/{date}/unavailable-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Формы: ограничение частоты по IP клиента
	forms := api.PathPrefix("").Subrouter()
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst, rateLimiterTTL, log)
		forms.Use(limiter.Middleware)
		log.Info("Rate limit for forms: %.0f req/min, burst=%d", cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst)
	}
	forms.HandleFunc("/consultations", submitConsultation.Handle).Methods(http.MethodPost)
	forms.HandleFunc("/briefings", submitBriefing.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (Bearer JWT, email из allowlist)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.NewAdminAuth(cfg.Admin.JWTSecret, cfg.Admin.Emails, log).Middleware)

	admin.HandleFunc("/availability-rules", listRules.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/availability-rules", setRule.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/availability-rules/{date}", deleteRule.Handle).Methods(http.MethodDelete)

	if cfg.Storage.Driver == config.StorageMemory {
		admin.HandleFunc("/dev/reset", resetData.Handle).Methods(http.MethodPost)
		log.Warn("Dev reset endpoint is enabled (storage=memory)")
	}

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	log.Info("Server stopped gracefully")
}
