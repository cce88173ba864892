package main

import (
	_ "Backend-Mergington/docs"
	"Backend-Mergington/src/controllers"
	"Backend-Mergington/src/directory"
	"Backend-Mergington/src/logger"
	"Backend-Mergington/src/middleware"
	"Backend-Mergington/src/observability"
	"Backend-Mergington/src/routes"
	"Backend-Mergington/src/services/activities"
	"fmt"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {

	// โหลดค่า Environment Variables จากไฟล์ .env
	if err := godotenv.Load(); err != nil {
		fmt.Println("⚠️ Warning: No .env file found")
	}

	log := logger.New()
	defer func() { _ = log.Sync() }()

	// seed directory ตอน start - restart แล้วข้อมูลกลับเป็นชุดนี้เสมอ
	seed := activities.DefaultActivities()
	if err := activities.ValidateSeed(seed); err != nil {
		log.Fatal("❌ Invalid activity seed", zap.Error(err))
	}
	dir := directory.New(seed)
	service := activities.NewService(dir, log)
	ctrl := controllers.NewActivityController(service)

	// สร้าง app instance
	app := fiber.New(fiber.Config{
		AppName: "Mergington High School Activities API",
	})

	// ✅ เปิดใช้งาน CORS Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: false, // ❌ ต้องเป็น false ถ้าใช้ "*"
	}))

	// request id + access log
	app.Use(middleware.RequestID())
	app.Use(middleware.RequestLogger(log))

	// เปิดใช้งาน Swagger ที่ URL /swagger
	app.Get("/swagger/*", swagger.HandlerDefault)

	// prometheus metrics
	app.Get("/metrics", observability.MetricsHandler())

	// หน้าเว็บสำหรับสมัครกิจกรรม
	app.Static("/static", "./static")

	// รวม routes จากแต่ละ module
	routes.InitRoutes(app, ctrl)

	// get port from .env
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8000" // ใช้ 8000 เป็นค่าเริ่มต้น
	}

	// เริ่มเซิร์ฟเวอร์
	log.Info("Server is running", zap.String("port", port))
	if err := app.Listen(fmt.Sprintf(":%s", port)); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
