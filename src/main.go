package main

import (
	"context"
	"errors"
	"hbs/src/boot"
	"hbs/src/common"
	"hbs/src/config"
	"hbs/src/lib"
	"hbs/src/lib/mailer"
	"hbs/src/middlewares"
	"hbs/src/utils"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path"
	"regexp"
	"strconv"
	"syscall"
	"time"

	"github.com/covalenthq/lumberjack"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

const (
	apiPrefix string = "/api/v1"
)

var bookingDateValidatorFunc validator.Func = func(fl validator.FieldLevel) bool {
	date, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	_, err := utils.ParseDate(date)
	return err == nil
}

// afterdate=Field holds when the date is strictly later than Field. An
// unparsable Field is left for its own bookingdate rule to report.
var afterDateValidatorFunc validator.Func = func(fl validator.FieldLevel) bool {
	date, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	datetime, err := utils.ParseDate(date)
	if err != nil {
		return false
	}
	field := fl.Parent().FieldByName(fl.Param())
	if !field.IsValid() {
		return false
	}
	fieldValue, ok := field.Interface().(string)
	if !ok {
		return false
	}
	fielddatetime, err := utils.ParseDate(fieldValue)
	if err != nil {
		return true
	}
	return datetime.After(fielddatetime)
}

func registerValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("bookingdate", bookingDateValidatorFunc)
		v.RegisterValidation("afterdate", afterDateValidatorFunc)
	}
}

func setupRouter() *gin.Engine {
	router := gin.Default()
	router.Use(middlewares.SecureHeaders)
	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, "ok")
	})
	return router
}

func maintenanceModeMiddleware(g *gin.Engine) *gin.Engine {
	g.Use(func(ctx *gin.Context) {
		mm := os.Getenv("MAINTENANCE_MODE")
		if mm == "" {
			return
		}
		on, err := strconv.ParseBool(mm)
		if err != nil || on {
			err := errors.New("server is under maintenance")
			log.Println(err.Error())
			ctx.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"success": false, "message": err.Error()})
			return
		}
	})
	return g
}

func apiv1Group(g *gin.Engine) *gin.RouterGroup {
	apiv1 := g.Group(apiPrefix)
	return apiv1
}

func corsMiddleware(apiEnv string) gin.HandlerFunc {
	if apiEnv == "local" {
		return cors.Default()
	}
	appHost := os.Getenv("APP_HOST")
	cc := cors.DefaultConfig()
	cc.AllowMethods = append(cc.AllowMethods, "GET", "POST", "PATCH", "PUT", "DELETE", "HEAD")
	cc.AllowHeaders = append(cc.AllowHeaders, "Origin", "Authorization")
	cc.AllowOriginFunc = func(origin string) bool {
		if appHost == "" {
			return false
		}
		match, _ := regexp.MatchString(appHost, origin)
		return match
	}
	cc.AllowCredentials = true
	cc.AllowAllOrigins = false
	return cors.New(cc)
}

// newBookingService wires the ledger to whichever gateways and notification
// channels are configured in the environment.
func newBookingService(gdb *gorm.DB) *common.Bookings {
	svc := &common.Bookings{
		Ledger: common.NewLedger(gdb, common.NewAvailabilityChecker()),
	}
	if sc := lib.GetStripeClient(); sc != nil {
		svc.Stripe = common.NewStripeGateway(sc, os.Getenv("STRIPE_WEBHOOK_SECRET"))
	} else {
		log.Println("[Stripe] STRIPE_SECRET_KEY not set, hosted checkout disabled")
	}
	if rc := lib.GetRazorpayClient(); rc != nil {
		svc.Razorpay = common.NewRazorpayGateway(rc.Order, os.Getenv("RAZORPAY_KEY_ID"), os.Getenv("RAZORPAY_KEY_SECRET"))
	} else {
		log.Println("[Razorpay] RAZORPAY_KEY_ID not set, orders disabled")
	}
	var publisher common.Publisher
	if pc := lib.GetPusherClient(); pc != nil {
		publisher = lib.NewPusherPublisher(pc)
	}
	svc.Notifier = common.NewNotifier(mailer.NewFromEnv(), publisher)
	if rdb := lib.GetRedisClient(); rdb != nil {
		svc.Locker = lib.NewRedisLocker(rdb, 30*time.Second)
	}
	return svc
}

func registerRoutes(router *gin.Engine, svc *common.Bookings) {
	limiter := middlewares.NewRateLimiter(
		int(config.GetInt("AVAILABILITY_RATE_PER_MINUTE", 60)),
		int(config.GetInt("AVAILABILITY_RATE_BURST", 10)),
	)
	publicRoutes(router, svc, limiter)
	stripeWebhookRoute(router, svc)

	authorized := router.Group(apiPrefix)
	authorized.Use(middlewares.AuthMiddleware)
	{
		authorized = userHandlers(authorized)
		authorized = hotelHandlers(authorized)
		authorized = roomHandlers(authorized)
		authorized = feedbackHandlers(authorized)
		authorized = bookingHandlers(authorized, svc)
		authorized = paymentHandlers(authorized, svc)
	}
}

func publicRoutes(g *gin.Engine, svc *common.Bookings, limiter *middlewares.RateLimiter) *gin.RouterGroup {
	apiv1 := apiv1Group(g)
	publicBookingRoutes(apiv1, svc, limiter)
	publicRoomRoutes(apiv1)
	publicFeedbackRoutes(apiv1)
	return apiv1
}

func initLogger() {
	cwd, _ := os.Getwd()
	logsDir := path.Join(cwd, "logs")
	if err := os.MkdirAll(logsDir, 0o755); err != nil {
		log.Printf("Could not create %s: %s\n", logsDir, err.Error())
		return
	}
	serverLogs := path.Join(logsDir, "server.log")
	apiLogs := path.Join(logsDir, "api.log")
	gin.ForceConsoleColor()

	f, _ := os.Create(apiLogs)
	gin.DefaultWriter = io.MultiWriter(f, os.Stdout)
	log.SetOutput(&lumberjack.Logger{
		Filename:   serverLogs,
		MaxSize:    500,
		MaxBackups: 3,
		MaxAge:     30,
		Compress:   true,
	})
}

func main() {
	apiEnv := os.Getenv("API_ENV")
	if apiEnv == "local" {
		cwd, _ := os.Getwd()
		if err := godotenv.Load(path.Join(cwd, ".env")); err != nil {
			panic(err)
		}
	}
	initLogger()

	gdb := boot.InitDb()
	svc := newBookingService(gdb)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	boot.InitScheduler(svc)
	boot.InitEmailWorker(ctx)

	router := setupRouter()
	router.Use(corsMiddleware(apiEnv))
	registerValidators()
	router = maintenanceModeMiddleware(router)
	registerRoutes(router, svc)

	srv := &http.Server{
		Addr:    ":" + config.GetEnv("PORT", "9090"),
		Handler: router,
	}
	go func() {
		var err error
		if os.Getenv("TLS_ENABLE") == "true" {
			cwd, _ := os.Getwd()
			certpath := path.Join(cwd, "certificates", "localhost.pem")
			keypath := path.Join(cwd, "certificates", "localhost-key.pem")
			err = srv.ListenAndServeTLS(certpath, keypath)
		} else {
			err = srv.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %s", err)
		}
	}()
	log.Printf("Server listening on %s\n", srv.Addr)

	<-ctx.Done()
	log.Println("Shutting down server...")
	boot.StopScheduler()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %s\n", err.Error())
	}
}
