// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package mapping holds the static translation tables between
// SuperSlicer/PrusaSlicer INI keys and OrcaSlicer JSON keys, the enumeration
// remap tables, and the profile-type detector built on top of them.
//
// The tables are authoring-time data: package-level maps with no runtime
// mutation. A source key maps to one or more destination keys; keys whose
// values need more than a rename (unit conversion, enum remap, g-code
// unescaping) additionally appear in the transform registry in
// internal/transform.
package mapping

import "github.com/theophile/superslicer-to-orca/pkg/types"

// Table maps source INI keys to destination JSON keys. A key may fan out to
// several destination keys, all receiving the same (transformed) value.
type Table map[string][]string

// Print maps print/process profile keys. Speed keys are listed here so the
// detector counts them, but their values are produced by the speed
// post-processor rather than the plain per-key pass.
var Print = Table{
	"avoid_crossing_perimeters":                {"reduce_crossing_wall"},
	"avoid_crossing_perimeters_max_detour":     {"max_travel_detour_distance"},
	"bottom_fill_pattern":                      {"bottom_surface_pattern"},
	"bottom_solid_layers":                      {"bottom_shell_layers"},
	"bottom_solid_min_thickness":               {"bottom_shell_thickness"},
	"bridge_acceleration":                      {"bridge_acceleration"},
	"bridge_angle":                             {"bridge_angle"},
	"bridge_flow_ratio":                        {"bridge_flow"},
	"bridge_speed":                             {"bridge_speed"},
	"brim_separation":                          {"brim_object_gap"},
	"brim_width":                               {"brim_width"},
	"complete_objects":                         {"print_sequence"},
	"default_acceleration":                     {"default_acceleration"},
	"default_speed":                            {},
	"dont_support_bridges":                     {"bridge_no_support"},
	"elefant_foot_compensation":                {"elefant_foot_compensation"},
	"elephant_foot_compensation":               {"elefant_foot_compensation"},
	"external_perimeter_acceleration":          {"outer_wall_acceleration"},
	"external_perimeter_extrusion_width":       {"outer_wall_line_width"},
	"external_perimeter_speed":                 {"outer_wall_speed"},
	"external_perimeters_first":                {},
	"extrusion_width":                          {"line_width"},
	"fill_angle":                               {"infill_direction"},
	"fill_density":                             {"sparse_infill_density"},
	"fill_pattern":                             {"sparse_infill_pattern"},
	"first_layer_acceleration":                 {"initial_layer_acceleration"},
	"first_layer_extrusion_width":              {"initial_layer_line_width"},
	"first_layer_height":                       {"initial_layer_print_height"},
	"first_layer_infill_speed":                 {"initial_layer_infill_speed"},
	"first_layer_speed":                        {"initial_layer_speed"},
	"gap_fill_speed":                           {"gap_infill_speed"},
	"infill_acceleration":                      {"sparse_infill_acceleration"},
	"infill_extrusion_width":                   {"sparse_infill_line_width"},
	"infill_first":                             {},
	"infill_overlap":                           {"infill_wall_overlap"},
	"infill_speed":                             {"sparse_infill_speed"},
	"interface_shells":                         {"interface_shells"},
	"ironing":                                  {},
	"ironing_flowrate":                         {"ironing_flow"},
	"ironing_spacing":                          {"ironing_spacing"},
	"ironing_speed":                            {"ironing_speed"},
	"ironing_type":                             {},
	"layer_height":                             {"layer_height"},
	"max_travel_detour_distance":               {"max_travel_detour_distance"},
	"min_skirt_length":                         {"skirt_min_length"},
	"output_filename_format":                   {"filename_format"},
	"overhangs":                                {"detect_overhang_wall"},
	"overhangs_speed":                          {},
	"perimeter_acceleration":                   {"inner_wall_acceleration"},
	"perimeter_extrusion_width":                {"inner_wall_line_width"},
	"perimeter_speed":                          {"inner_wall_speed"},
	"perimeters":                               {"wall_loops"},
	"raft_contact_distance":                    {"raft_contact_distance"},
	"raft_expansion":                           {"raft_expansion"},
	"raft_first_layer_density":                 {"raft_first_layer_density"},
	"raft_first_layer_expansion":               {"raft_first_layer_expansion"},
	"raft_layers":                              {"raft_layers"},
	"resolution":                               {"resolution"},
	"seam_position":                            {"seam_position"},
	"skirt_distance":                           {"skirt_distance"},
	"skirt_height":                             {"skirt_height"},
	"skirts":                                   {"skirt_loops"},
	"small_perimeter_speed":                    {"small_perimeter_speed"},
	"solid_fill_pattern":                       {"internal_solid_infill_pattern"},
	"solid_infill_below_area":                  {"minimum_sparse_infill_area"},
	"solid_infill_extrusion_width":             {"internal_solid_infill_line_width"},
	"solid_infill_speed":                       {"internal_solid_infill_speed"},
	"spiral_vase":                              {"spiral_mode"},
	"support_material":                         {"enable_support"},
	"support_material_angle":                   {"support_angle"},
	"support_material_bottom_contact_distance": {"support_bottom_z_distance"},
	"support_material_bottom_interface_layers": {"support_interface_bottom_layers"},
	"support_material_buildplate_only":         {"support_on_build_plate_only"},
	"support_material_contact_distance":        {"support_top_z_distance"},
	"support_material_extrusion_width":         {"support_line_width"},
	"support_material_interface_layers":        {"support_interface_top_layers"},
	"support_material_interface_pattern":       {"support_interface_pattern"},
	"support_material_interface_spacing":       {"support_interface_spacing"},
	"support_material_interface_speed":         {"support_interface_speed"},
	"support_material_pattern":                 {"support_base_pattern"},
	"support_material_spacing":                 {"support_base_pattern_spacing"},
	"support_material_speed":                   {"support_speed"},
	"support_material_style":                   {"support_type", "support_style"},
	"support_material_threshold":               {"support_threshold_angle"},
	"support_material_xy_spacing":              {"support_object_xy_distance"},
	"thin_walls":                               {"detect_thin_wall"},
	"top_fill_pattern":                         {"top_surface_pattern"},
	"top_infill_extrusion_width":               {"top_surface_line_width"},
	"top_solid_infill_acceleration":            {"top_surface_acceleration"},
	"top_solid_infill_speed":                   {"top_surface_speed"},
	"top_solid_layers":                         {"top_shell_layers"},
	"top_solid_min_thickness":                  {"top_shell_thickness"},
	"travel_acceleration":                      {"travel_acceleration"},
	"travel_speed":                             {"travel_speed"},
	"wipe_tower":                               {"enable_prime_tower"},
	"wipe_tower_width":                         {"prime_tower_width"},
	"xy_size_compensation":                     {"xy_contour_compensation"},
}

// Filament maps filament profile keys. The bed-temperature keys fan out to
// both the smooth and textured plate fields, which Orca keeps separate.
var Filament = Table{
	"bed_temperature":                      {"hot_plate_temp", "textured_plate_temp"},
	"bridge_fan_speed":                     {"overhang_fan_speed"},
	"chamber_temperature":                  {"chamber_temperatures"},
	"disable_fan_first_layers":             {"close_fan_the_first_x_layers"},
	"end_filament_gcode":                   {"filament_end_gcode"},
	"extrusion_multiplier":                 {"filament_flow_ratio"},
	"fan_always_on":                        {"reduce_fan_stop_start_freq"},
	"fan_below_layer_time":                 {"fan_cooling_layer_time"},
	"filament_colour":                      {"default_filament_colour"},
	"filament_cost":                        {"filament_cost"},
	"filament_density":                     {"filament_density"},
	"filament_diameter":                    {"filament_diameter"},
	"filament_max_volumetric_speed":        {"filament_max_volumetric_speed"},
	"filament_minimal_purge_on_wipe_tower": {"filament_minimal_purge_on_wipe_tower"},
	"filament_notes":                       {"filament_notes"},
	"filament_retract_length":              {"filament_retraction_length"},
	"filament_retract_lift":                {"filament_z_hop"},
	"filament_retract_restart_extra":       {"filament_retract_restart_extra"},
	"filament_retract_speed":               {"filament_retraction_speed"},
	"filament_shrink":                      {"filament_shrink"},
	"filament_soluble":                     {"filament_soluble"},
	"filament_type":                        {"filament_type"},
	"filament_vendor":                      {"filament_vendor"},
	"filament_wipe":                        {"filament_wipe"},
	"first_layer_bed_temperature":          {"hot_plate_temp_initial_layer", "textured_plate_temp_initial_layer"},
	"first_layer_temperature":              {"nozzle_temperature_initial_layer"},
	"full_fan_speed_layer":                 {"full_fan_speed_layer"},
	"max_fan_speed":                        {"fan_max_speed"},
	"min_fan_speed":                        {"fan_min_speed"},
	"min_print_speed":                      {"slow_down_min_speed"},
	"slowdown_below_layer_time":            {"slow_down_layer_time"},
	"start_filament_gcode":                 {"filament_start_gcode"},
	"temperature":                          {"nozzle_temperature"},
}

// Printer maps printer/machine profile keys. Most machine-limit keys carry
// the same name in both formats.
var Printer = Table{
	"bed_shape":                           {"printable_area"},
	"before_layer_gcode":                  {"before_layer_change_gcode"},
	"deretract_speed":                     {"deretraction_speed"},
	"end_gcode":                           {"machine_end_gcode"},
	"gcode_flavor":                        {"gcode_flavor"},
	"layer_gcode":                         {"layer_change_gcode"},
	"machine_max_acceleration_e":          {"machine_max_acceleration_e"},
	"machine_max_acceleration_extruding":  {"machine_max_acceleration_extruding"},
	"machine_max_acceleration_retracting": {"machine_max_acceleration_retracting"},
	"machine_max_acceleration_travel":     {"machine_max_acceleration_travel"},
	"machine_max_acceleration_x":          {"machine_max_acceleration_x"},
	"machine_max_acceleration_y":          {"machine_max_acceleration_y"},
	"machine_max_acceleration_z":          {"machine_max_acceleration_z"},
	"machine_max_feedrate_e":              {"machine_max_speed_e"},
	"machine_max_feedrate_x":              {"machine_max_speed_x"},
	"machine_max_feedrate_y":              {"machine_max_speed_y"},
	"machine_max_feedrate_z":              {"machine_max_speed_z"},
	"machine_max_jerk_e":                  {"machine_max_jerk_e"},
	"machine_max_jerk_x":                  {"machine_max_jerk_x"},
	"machine_max_jerk_y":                  {"machine_max_jerk_y"},
	"machine_max_jerk_z":                  {"machine_max_jerk_z"},
	"machine_min_extruding_rate":          {"machine_min_extruding_rate"},
	"machine_min_travel_rate":             {"machine_min_travel_rate"},
	"max_layer_height":                    {"max_layer_height"},
	"max_print_height":                    {"printable_height"},
	"min_layer_height":                    {"min_layer_height"},
	"nozzle_diameter":                     {"nozzle_diameter"},
	"pause_print_gcode":                   {"machine_pause_gcode"},
	"printer_notes":                       {"printer_notes"},
	"retract_before_wipe":                 {"retract_before_wipe"},
	"retract_layer_change":                {"retract_when_changing_layer"},
	"retract_length":                      {"retraction_length"},
	"retract_length_toolchange":           {"retract_length_toolchange"},
	"retract_lift":                        {"z_hop"},
	"retract_lift_above":                  {"retract_lift_above"},
	"retract_lift_below":                  {"retract_lift_below"},
	"retract_restart_extra":               {"retract_restart_extra"},
	"retract_speed":                       {"retraction_speed"},
	"silent_mode":                         {"silent_mode"},
	"single_extruder_multi_material":      {"single_extruder_multi_material"},
	"start_gcode":                         {"machine_start_gcode"},
	"toolchange_gcode":                    {"change_filament_gcode"},
	"use_firmware_retraction":             {"use_firmware_retraction"},
	"use_relative_e_distances":            {"use_relative_e_distances"},
	"wipe":                                {"wipe"},
}

// PhysicalPrinter maps the secondary connection profile. These keys are
// merged into a printer profile, never emitted standalone.
var PhysicalPrinter = Table{
	"host_type":                    {"host_type"},
	"print_host":                   {"print_host"},
	"printhost_apikey":             {"printhost_apikey"},
	"printhost_authorization_type": {"printhost_authorization_type"},
	"printhost_cafile":             {"printhost_cafile"},
	"printhost_password":           {"printhost_password"},
	"printhost_port":               {"printhost_port"},
	"printhost_ssl_ignore_revoke":  {"printhost_ssl_ignore_revoke"},
	"printhost_user":               {"printhost_user"},
}

// ForType returns the translation table for a profile type.
func ForType(t types.ProfileType) Table {
	switch t {
	case types.ProfilePrint:
		return Print
	case types.ProfileFilament:
		return Filament
	case types.ProfilePrinter:
		return Printer
	case types.ProfilePhysicalPrinter:
		return PhysicalPrinter
	}
	return nil
}
