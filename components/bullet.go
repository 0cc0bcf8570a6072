package components

import "github.com/yohamta/donburi"

type BulletData struct {
	Owner   *donburi.Entry // may be removed before the bullet is
	Damage  int
	Hostile bool
}

var Bullet = donburi.NewComponentType[BulletData]()
