package main

import (
	"flag"
	"strconv"

	C "storepulse/config"
	H "storepulse/handler"
	mid "storepulse/middleware"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// ./app --env=development --api_http_port=8080 --db_host=localhost --db_port=3306 --db_user=storepulse --db_name=storepulse --db_pass=storepulse
func main() {
	env := flag.String("env", "development", "")
	port := flag.Int("api_http_port", 8080, "")

	dbHost := flag.String("db_host", "localhost", "")
	dbPort := flag.Int("db_port", 3306, "")
	dbUser := flag.String("db_user", "storepulse", "")
	dbName := flag.String("db_name", "storepulse", "")
	dbPass := flag.String("db_pass", "storepulse", "")
	flag.Parse()

	config := &C.Configuration{
		AppName: "intelligence_server",
		Env:     *env,
		Port:    *port,
		DBInfo: C.DBConf{
			Host:     *dbHost,
			Port:     *dbPort,
			User:     *dbUser,
			Name:     *dbName,
			Password: *dbPass,
		},
	}

	// Initialize configs and connections.
	if err := C.Init(config); err != nil {
		log.WithError(err).Fatal("Failed to initialize.")
		return
	}

	if !C.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(mid.CustomCors())
	r.Use(mid.RequestIdGenerator())
	r.Use(mid.Logger())
	r.Use(mid.Recovery())

	// Initialize routes.
	H.InitAppRoutes(r)
	r.Run(":" + strconv.Itoa(C.GetConfig().Port))
}
