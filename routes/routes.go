package routes

import (
	"github.com/International-Slackline-Association/SlackData/handlers"
	"github.com/International-Slackline-Association/SlackData/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRoutes builds the engine with the middleware chain and the REST
// routes for every catalog category.
func SetupRoutes() *gin.Engine {
	r := gin.New()

	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	r.Use(cors.New(corsConfig))

	brandHandler := handlers.NewBrandHandler()
	webbingHandler := handlers.NewWebbingHandler()
	weblockHandler := handlers.NewWeblockHandler()
	rollerHandler := handlers.NewRollerHandler()
	leashRingHandler := handlers.NewLeashRingHandler()
	gripHandler := handlers.NewGripHandler()
	treeProHandler := handlers.NewTreeProHandler()
	starterKitHandler := handlers.NewStarterKitHandler()
	tricklineKitHandler := handlers.NewTricklineKitHandler()

	api := r.Group("/api")
	{
		brands := api.Group("/brands")
		{
			brands.GET("", brandHandler.GetBrands)
			brands.GET("/:id", brandHandler.GetBrand)
			brands.POST("", brandHandler.CreateBrand)
			brands.PATCH("/:id", brandHandler.UpdateBrand)
			brands.DELETE("/:id", brandHandler.DeleteBrand)
		}

		webbings := api.Group("/webbings")
		{
			webbings.GET("", webbingHandler.GetWebbings)
			webbings.GET("/:id", webbingHandler.GetWebbing)
			webbings.POST("", webbingHandler.CreateWebbing)
			webbings.PATCH("/:id", webbingHandler.UpdateWebbing)
			webbings.DELETE("/:id", webbingHandler.DeleteWebbing)
		}

		weblocks := api.Group("/weblocks")
		{
			weblocks.GET("", weblockHandler.GetWeblocks)
			weblocks.GET("/:id", weblockHandler.GetWeblock)
			weblocks.POST("", weblockHandler.CreateWeblock)
			weblocks.PATCH("/:id", weblockHandler.UpdateWeblock)
			weblocks.DELETE("/:id", weblockHandler.DeleteWeblock)
		}

		rollers := api.Group("/rollers")
		{
			rollers.GET("", rollerHandler.GetRollers)
			rollers.GET("/:id", rollerHandler.GetRoller)
			rollers.POST("", rollerHandler.CreateRoller)
			rollers.PATCH("/:id", rollerHandler.UpdateRoller)
			rollers.DELETE("/:id", rollerHandler.DeleteRoller)
		}

		leashrings := api.Group("/leashrings")
		{
			leashrings.GET("", leashRingHandler.GetLeashRings)
			leashrings.GET("/:id", leashRingHandler.GetLeashRing)
			leashrings.POST("", leashRingHandler.CreateLeashRing)
			leashrings.PATCH("/:id", leashRingHandler.UpdateLeashRing)
			leashrings.DELETE("/:id", leashRingHandler.DeleteLeashRing)
		}

		grips := api.Group("/grips")
		{
			grips.GET("", gripHandler.GetGrips)
			grips.GET("/:id", gripHandler.GetGrip)
			grips.POST("", gripHandler.CreateGrip)
			grips.PATCH("/:id", gripHandler.UpdateGrip)
			grips.DELETE("/:id", gripHandler.DeleteGrip)
		}

		treepros := api.Group("/treepros")
		{
			treepros.GET("", treeProHandler.GetTreePros)
			treepros.GET("/:id", treeProHandler.GetTreePro)
			treepros.POST("", treeProHandler.CreateTreePro)
			treepros.PATCH("/:id", treeProHandler.UpdateTreePro)
			treepros.DELETE("/:id", treeProHandler.DeleteTreePro)
		}

		starterkits := api.Group("/starterkits")
		{
			starterkits.GET("", starterKitHandler.GetStarterKits)
			starterkits.GET("/:id", starterKitHandler.GetStarterKit)
			starterkits.POST("", starterKitHandler.CreateStarterKit)
			starterkits.PATCH("/:id", starterKitHandler.UpdateStarterKit)
			starterkits.DELETE("/:id", starterKitHandler.DeleteStarterKit)
		}

		tricklinekits := api.Group("/tricklinekits")
		{
			tricklinekits.GET("", tricklineKitHandler.GetTricklineKits)
			tricklinekits.GET("/:id", tricklineKitHandler.GetTricklineKit)
			tricklinekits.POST("", tricklineKitHandler.CreateTricklineKit)
			tricklinekits.PATCH("/:id", tricklineKitHandler.UpdateTricklineKit)
			tricklinekits.DELETE("/:id", tricklineKitHandler.DeleteTricklineKit)
		}
	}

	return r
}
