package echo

import e "github.com/labstack/echo/v4"

func RegisterRoutes(server *e.Echo, importHandler *ImportHandler, userHandler *UserHandler) {
	users := server.Group("/api/v1/users")

	if importHandler != nil {
		users.GET("/template", importHandler.DownloadTemplate)
		users.POST("/import", importHandler.ImportUsers)
	}

	if userHandler != nil {
		users.GET("", userHandler.ListUsers)
		users.POST("", userHandler.CreateUser)
		users.GET("/:id", userHandler.GetUserByID)
		users.PUT("/:id", userHandler.UpdateUser)
		users.DELETE("/:id", userHandler.DeleteUser)
	}
}
