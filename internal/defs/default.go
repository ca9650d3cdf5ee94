// internal/defs/default.go
package defs

// DefaultYAML - встроенный сценарий: два растения у центра, бродячие зомби и
// орда, идущая к общей цели.
const DefaultYAML = `
projectiles:
  - id: pea
    mass: 1.0
    radius: 0.25
    gravity_scale: 0.15
    lifetime: 4.0

markers:
  - id: splat
    lifetime: 0.6

plants:
  - id: peashooter
    name: Peashooter
    detection_range: 15
    fire_rate: 1.0
    target_faction: zombie
    projectile: pea
    fire_point: {x: 0, y: 1.0, z: 0.6}
    launch_force: 1000
    retarget_interval: 0.5
    visuals:
      color: {r: 50, g: 205, b: 50, a: 255}
      radius: 0.7
  - id: repeater
    name: Repeater
    detection_range: 12
    fire_rate: 2.0
    target_faction: zombie
    projectile: pea
    fire_point: {x: 0, y: 1.0, z: 0.6}
    launch_force: 900
    visuals:
      color: {r: 0, g: 160, b: 60, a: 255}
      radius: 0.8

zombies:
  - id: walker
    name: Walker
    health: 100
    damage_to_take: 25
    speed: 1.5
    collider_radius: 0.6
    collider_height: 1.0
    stopping_distance: 0.5
    strategy: wander
    wander_radius: 15
    wander_timer: 5
    impact_marker: splat
    ragdoll_parts:
      - {name: torso, offset: {x: 0, y: 1.0, z: 0}}
      - {name: head, offset: {x: 0, y: 1.7, z: 0}}
      - {name: left_leg, offset: {x: -0.2, y: 0.4, z: 0}}
      - {name: right_leg, offset: {x: 0.2, y: 0.4, z: 0}}
  - id: runner
    name: Runner
    health: 75
    damage_to_take: 25
    speed: 2.5
    collider_radius: 0.5
    collider_height: 1.0
    stopping_distance: 0.5
    strategy: goal
    impact_marker: splat
    ragdoll_parts:
      - {name: torso, offset: {x: 0, y: 1.0, z: 0}}
      - {name: head, offset: {x: 0, y: 1.6, z: 0}}

scenario:
  seed: 42
  map_radius: 22
  hex_size: 1.0
  obstacle_threshold: 0.68
  goal: {x: 0, y: 0, z: -16}
  plants:
    - {def: peashooter, position: {x: -3, y: 0, z: -8}}
    - {def: repeater, position: {x: 3, y: 0, z: -8}}
  zombies:
    - {def: walker, position: {x: -10, y: 0, z: 6}}
    - {def: walker, position: {x: 10, y: 0, z: 6}}
  hordes:
    - count: 6
      center: {x: 0, y: 0, z: 14}
      spread: 4
      mix:
        - {def: runner, weight: 2}
        - {def: walker, weight: 1}
`
