//go:build cgo

package hal

import "github.com/hajimehoshi/ebiten/v2"

func (p *hostPointer) poll() {
	x, y := ebiten.CursorPosition()
	_, wy := ebiten.Wheel()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	for _, ev := range p.tr.sample(nil, x, y, pressed, wy) {
		p.emit(ev)
	}
}
