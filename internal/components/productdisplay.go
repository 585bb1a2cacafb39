package components

import (
	"showroom/internal/catalog"
	"showroom/internal/crosshair"
	"showroom/internal/engine"
	"showroom/internal/physics"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Display animation constants.
const (
	HoverLift       = 0.3
	HoverScale      = 1.15
	HoverSpinRate   = 0.5 // rad/s
	ClickSpinRate   = 3   // rad/s
	ClickPulseTime  = 1   // seconds
	bobAmplitude    = 0.02
	bobRate         = 2
	easeRate        = 8
	pulseBaseScale  = 1.2
	pulseAmplitude  = 0.1
	pulseRate       = 15
	platformOffsetY = -0.8
)

var (
	platformIdle  = rl.NewColor(248, 249, 250, 180)
	platformHover = rl.NewColor(52, 152, 219, 230)
)

// ProductDisplay shows one catalog product on a floating platform. It is a
// crosshair target: hovering lifts, enlarges and slowly spins it, and a
// click spins it fast with a one second pulse.
type ProductDisplay struct {
	engine.BaseComponent

	product catalog.Product
	kind    catalog.Kind
	base    rl.Vector3
	parts   []Part
	body    physics.Body

	hovered    bool
	clickTimer float32
	elapsed    float32
	lift       float32
	scale      float32
	yaw        float32

	// Registry is told when the display leaves the scene.
	Registry interface{ Remove(crosshair.Target) }
}

func NewProductDisplay(p catalog.Product, base rl.Vector3) *ProductDisplay {
	kind := catalog.ModelKind(p.ID)
	parts := Model(kind)
	body := make(physics.Body, 0, len(parts)+1)
	body = append(body, platformPart().Collider())
	for _, part := range parts {
		body = append(body, part.Collider())
	}
	return &ProductDisplay{
		product: p,
		kind:    kind,
		base:    base,
		parts:   parts,
		body:    body,
		scale:   1,
	}
}

func platformPart() Part {
	return cylinder(v3(0, platformOffsetY, 0), 1.2, 0.1, platformIdle)
}

func (d *ProductDisplay) Start() {
	d.syncTransform()
}

func (d *ProductDisplay) Update(deltaTime float32) {
	d.elapsed += deltaTime
	ease := math32.Min(1, deltaTime*easeRate)

	targetLift, targetScale := float32(0), float32(1)
	if d.hovered {
		targetLift, targetScale = HoverLift, HoverScale
		d.yaw += deltaTime * HoverSpinRate
	}
	d.lift += (targetLift - d.lift) * ease
	d.scale += (targetScale - d.scale) * ease

	if d.clickTimer > 0 {
		d.clickTimer -= deltaTime
		d.yaw += deltaTime * ClickSpinRate
		d.scale = pulseBaseScale + math32.Sin(d.elapsed*pulseRate)*pulseAmplitude
		if d.clickTimer <= 0 {
			d.clickTimer = 0
		}
	}
	d.yaw = math32.Mod(d.yaw, 2*math32.Pi)
	d.syncTransform()
}

func (d *ProductDisplay) syncTransform() {
	g := d.GetGameObject()
	if g == nil {
		return
	}
	g.Transform.Position = d.Position()
	g.Transform.Rotation = rl.Vector3{Y: d.yaw * rl.Rad2deg}
	g.Transform.Scale = rl.Vector3{X: d.scale, Y: d.scale, Z: d.scale}
}

// Position is the animated origin: base, hover lift and float bob.
func (d *ProductDisplay) Position() rl.Vector3 {
	p := d.base
	p.Y += d.lift + math32.Sin(d.elapsed*bobRate+d.base.X)*bobAmplitude
	return p
}

func (d *ProductDisplay) Base() rl.Vector3         { return d.base }
func (d *ProductDisplay) Kind() catalog.Kind       { return d.kind }
func (d *ProductDisplay) Scale() float32           { return d.scale }
func (d *ProductDisplay) Yaw() float32             { return d.yaw }
func (d *ProductDisplay) IsHovered() bool          { return d.hovered }
func (d *ProductDisplay) Pulsing() bool            { return d.clickTimer > 0 }
func (d *ProductDisplay) Product() catalog.Product { return d.product }

// HitShape places the platform and model parts at the current pose.
func (d *ProductDisplay) HitShape() physics.Shape {
	return d.body.Place(physics.Placement{Position: d.Position(), Scale: d.scale, Yaw: d.yaw})
}

func (d *ProductDisplay) SetHovered(hovered bool) {
	d.hovered = hovered
}

func (d *ProductDisplay) Clicked() {
	d.clickTimer = ClickPulseTime
}

func (d *ProductDisplay) OnDestroy() {
	if d.Registry != nil {
		d.Registry.Remove(d)
	}
}

// Draw renders the platform and the model with the current animation.
func (d *ProductDisplay) Draw() {
	pos := d.Position()
	rl.PushMatrix()
	rl.Translatef(pos.X, pos.Y, pos.Z)
	rl.Rotatef(d.yaw*rl.Rad2deg, 0, 1, 0)
	rl.Scalef(d.scale, d.scale, d.scale)

	platform := platformPart()
	if d.hovered {
		platform.Color = platformHover
	}
	platform.Draw(false)
	for _, part := range d.parts {
		part.Draw(d.hovered)
	}
	rl.PopMatrix()
}
