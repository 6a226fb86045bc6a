package handler

import (
	"github.com/fitmate-dev/workout-partner/backend/internal/availability"
	"github.com/fitmate-dev/workout-partner/backend/internal/booking"
	"github.com/fitmate-dev/workout-partner/backend/internal/config"
	"github.com/fitmate-dev/workout-partner/backend/internal/domain"
	"github.com/fitmate-dev/workout-partner/backend/internal/repository"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	zh_translations "github.com/go-playground/validator/v10/translations/zh"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
)

type Handler struct {
	validate     *validator.Validate
	config       *config.Config
	repository   *repository.Repository
	translator   ut.Translator
	mailChannel  *amqp.Channel
	redisClient  *redis.Client
	availability *availability.Calculator
	coordinator  *booking.Coordinator

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, mailCh *amqp.Channel, rdb *redis.Client) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	zh := zh.New()
	uni := ut.New(zh, zh)
	trans, _ := uni.GetTranslator("zh")
	if err := zh_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:     validate,
		config:       cfg,
		repository:   repo,
		translator:   trans,
		mailChannel:  mailCh,
		redisClient:  rdb,
		availability: availability.NewCalculator(cfg.Availability.StartOfDayHour, cfg.Availability.EndOfDayHour),
		coordinator:  booking.NewCoordinator(repo),

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	// 认证相关
	h.Mux.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
		r.Route("/reset-password", func(r chi.Router) {
			r.Post("/require", h.RequireResetPassword)
			r.Post("/confirm", h.ConfirmResetPassword)
		})
	})

	// 以下 API 必须要在登录后才允许调用
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Route("/my-info", func(r chi.Router) {
			r.Use(h.myInfo)
			r.Get("/", h.GetMyInfo)
			r.Patch("/password", h.UpdateMyPassword)
			r.Route("/update-email", func(r chi.Router) {
				r.Post("/require", h.RequireUpdateEmail)
				r.Post("/confirm", h.ConfirmUpdateEmail)
			})
		})

		r.Route("/users", func(r chi.Router) {
			r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Post("/", h.CreateUser)
			r.With(h.myInfo).Get("/", h.GetPartnerDirectory) // 只返回在约的搭子，不含自己
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.userInfo)
				r.Get("/", h.GetUserInfo)
				r.With(h.preventOperateInitialAdmin).With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Patch("/", h.UpdateUser)
				r.With(h.preventOperateInitialAdmin).With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Delete("/", h.DeleteUser)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Patch("/password", h.UpdateUserPassword)
				r.Get("/availability", h.GetUserAvailability) // 给想要约对方的人看空闲时段
			})
		})

		r.Route("/work-shifts", func(r chi.Router) {
			r.Use(h.myInfo)
			r.Post("/", h.CreateWorkShift)
			r.Get("/", h.GetMyWorkShifts)
			r.Get("/availability", h.GetMyAvailability)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.workShift)
				r.Patch("/", h.UpdateWorkShift)
				r.Delete("/", h.DeleteWorkShift)
			})
		})

		r.Route("/training-requests", func(r chi.Router) {
			r.Use(h.myInfo)
			r.Post("/", h.SendTrainingRequest)
			r.Get("/incoming", h.GetIncomingTrainingRequests)
			r.Get("/outgoing", h.GetOutgoingTrainingRequests)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.trainingRequest)
				r.Post("/accept", h.AcceptTrainingRequest)
				r.Post("/decline", h.DeclineTrainingRequest)
			})
		})

		r.With(h.myInfo).Get("/bookings", h.GetMyBookings)

		r.Route("/exercises", func(r chi.Router) {
			r.Get("/", h.GetAllExercises)
			r.With(h.RequiredRole([]domain.Role{domain.RoleCoach, domain.RoleAdmin})).Post("/", h.CreateExercise)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.exercise)
				r.Get("/", h.GetExercise)
				r.With(h.RequiredRole([]domain.Role{domain.RoleCoach, domain.RoleAdmin})).Patch("/", h.UpdateExercise)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Delete("/", h.DeleteExercise)
			})
		})

		r.Route("/workout-sessions", func(r chi.Router) {
			r.Use(h.myInfo)
			r.Post("/", h.StartWorkoutSession)
			r.Get("/", h.GetMyWorkoutSessions)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.workoutSession)
				r.Get("/", h.GetWorkoutSession)
				r.Put("/logs", h.ReplaceWorkoutSessionLogs)
				r.Post("/complete", h.CompleteWorkoutSession)
				r.Delete("/", h.DeleteWorkoutSession)
			})
		})

		r.Route("/workout-templates", func(r chi.Router) {
			r.Use(h.myInfo)
			r.Post("/", h.CreateWorkoutTemplate)
			r.Get("/", h.GetMyWorkoutTemplates)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.workoutTemplate)
				r.Get("/", h.GetWorkoutTemplate)
				r.Patch("/", h.UpdateWorkoutTemplate)
				r.Delete("/", h.DeleteWorkoutTemplate)
			})
		})

		r.With(h.myInfo).Get("/overview", h.GetOverview)
	})
}
