package http

import (
	"time"

	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"coursehub/internal/domain/contract"
	"coursehub/internal/handler/http/middleware"
	"coursehub/internal/infrastructure/metrics"
	"coursehub/internal/usecase"
	usecasecontract "coursehub/internal/usecase/contract"
)

// Router wires the handlers onto the gin engine.
type Router struct {
	userHandler     *UserHandler
	courseHandler   *CourseHandler
	lectureHandler  *LectureHandler
	mediaHandler    *MediaHandler
	purchaseHandler *PurchaseHandler
	tokenService    usecase.TokenService
	config          usecasecontract.IConfigProvider
}

func NewRouter(
	userUsecase usecasecontract.IUserUseCase,
	courseUsecase usecasecontract.ICourseUseCase,
	lectureUsecase usecasecontract.ILectureUseCase,
	purchaseUsecase usecasecontract.IPurchaseUseCase,
	mediaService contract.IMediaService,
	tokenService usecase.TokenService,
	config usecasecontract.IConfigProvider,
) *Router {
	return &Router{
		userHandler:     NewUserHandler(userUsecase, config),
		courseHandler:   NewCourseHandler(courseUsecase),
		lectureHandler:  NewLectureHandler(lectureUsecase),
		mediaHandler:    NewMediaHandler(mediaService),
		purchaseHandler: NewPurchaseHandler(purchaseUsecase),
		tokenService:    tokenService,
		config:          config,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	origins := r.config.GetCORSOrigins()
	if len(origins) == 0 {
		origins = []string{r.config.GetFrontendBaseURL()}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	lmt := tollbooth.NewLimiter(10, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
	lmt.SetIPLookups([]string{"RemoteAddr", "X-Forwarded-For", "X-Real-IP"})
	lmt.SetMessage("Too many requests, please try again later.")
	router.Use(middleware.RateLimiter(lmt))

	router.Use(metrics.RequestCounter())
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/", func(c *gin.Context) {
		MessageHandler(c, 200, "Hello, welcome to the CourseHub backend.")
	})
	router.GET("/home", func(c *gin.Context) {
		MessageHandler(c, 200, "Hello, I am coming from the backend.")
	})

	v1 := router.Group("/api/v1")
	authenticated := middleware.Authenticated(r.tokenService)

	user := v1.Group("/user")
	{
		user.POST("/register", r.userHandler.Register)
		user.POST("/login", r.userHandler.Login)
		user.GET("/logout", r.userHandler.Logout)
		user.POST("/forgot-password", r.userHandler.ForgotPassword)
		user.POST("/forgetPassword/:id", r.userHandler.ResetPassword)

		user.GET("/profile", authenticated, r.userHandler.GetProfile)
		user.GET("/my-course", authenticated, r.userHandler.GetMyCourses)
		user.PUT("/profile/update", authenticated, r.userHandler.UpdateProfile)
	}

	course := v1.Group("/course")
	{
		course.GET("/published-courses", r.courseHandler.GetPublishedCourses)

		course.POST("/create", authenticated, r.courseHandler.CreateCourse)
		course.GET("/courses", authenticated, r.courseHandler.GetCreatorCourses)
		course.GET("/search", authenticated, r.courseHandler.SearchCourses)
		course.GET("/:courseId", authenticated, r.courseHandler.GetCourseByID)
		course.PUT("/:courseId", authenticated, r.courseHandler.EditCourse)
		course.PATCH("/:courseId", authenticated, r.courseHandler.TogglePublish)

		course.POST("/:courseId/lecture", authenticated, r.lectureHandler.CreateLecture)
		course.GET("/:courseId/lecture", authenticated, r.lectureHandler.GetCourseLectures)
		course.PUT("/:courseId/lecture/:lectureId", authenticated, r.lectureHandler.EditLecture)
		course.GET("/lecture/:lectureId", authenticated, r.lectureHandler.GetLectureByID)
		course.DELETE("/lecture/:lectureId", authenticated, r.lectureHandler.RemoveLecture)
	}

	media := v1.Group("/media")
	{
		media.POST("/upload-video", authenticated, r.mediaHandler.UploadVideo)
	}

	purchase := v1.Group("/purchase")
	{
		// authenticated by the gateway signature, not the session cookie
		purchase.POST("/webhook", r.purchaseHandler.Webhook)

		purchase.POST("/checkout/create-checkout-session", authenticated, r.purchaseHandler.CreateCheckoutSession)
		purchase.GET("/course/:courseId/detail-with-status", authenticated, r.purchaseHandler.GetCourseDetailWithStatus)
		purchase.GET("", authenticated, r.purchaseHandler.GetAllPurchasedCourses)
	}
}
