package tags

import "github.com/yohamta/donburi"

var (
	Player  = donburi.NewTag().SetName("Player")
	Enemy   = donburi.NewTag().SetName("Enemy")
	Bullet  = donburi.NewTag().SetName("Bullet")
	Spawner = donburi.NewTag().SetName("Spawner")
	Effect  = donburi.NewTag().SetName("Effect")
)

// Resolv tags for collision queries
const (
	ResolvPlayer   = "Player"
	ResolvEnemy    = "Enemy"
	ResolvBullet   = "Bullet"
	ResolvHostile  = "Hostile"  // bullets that hurt the player
	ResolvFriendly = "Friendly" // bullets that hurt enemies
)
