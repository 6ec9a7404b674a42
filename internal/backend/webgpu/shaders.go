//go:build windows

package webgpu

// workgroupSize is the default number of threads per workgroup.
const workgroupSize = 256

// maxWorkgroups is the per-dimension dispatch limit of WebGPU.
const maxWorkgroups = 65535

// padShader writes, for every output element, either the input element it
// falls on or zero. Supports up to 6D tensors.
const padShader = `
@group(0) @binding(0) var<storage, read> input: array<f32>;
@group(0) @binding(1) var<storage, read_write> result: array<f32>;

struct Params {
    ndim: u32,
    total_elements: u32,
    output_strides_0: u32,
    output_strides_1: u32,
    output_strides_2: u32,
    output_strides_3: u32,
    output_strides_4: u32,
    output_strides_5: u32,
    input_shape_0: u32,
    input_shape_1: u32,
    input_shape_2: u32,
    input_shape_3: u32,
    input_shape_4: u32,
    input_shape_5: u32,
    start_0: u32,
    start_1: u32,
    start_2: u32,
    start_3: u32,
    start_4: u32,
    start_5: u32,
}
@group(0) @binding(2) var<uniform> params: Params;

@compute @workgroup_size(256)
fn main(@builtin(global_invocation_id) global_id: vec3<u32>) {
    let idx = global_id.x;
    if (idx >= params.total_elements) {
        return;
    }

    var output_strides: array<u32, 6>;
    output_strides[0] = params.output_strides_0;
    output_strides[1] = params.output_strides_1;
    output_strides[2] = params.output_strides_2;
    output_strides[3] = params.output_strides_3;
    output_strides[4] = params.output_strides_4;
    output_strides[5] = params.output_strides_5;

    var input_shape: array<u32, 6>;
    input_shape[0] = params.input_shape_0;
    input_shape[1] = params.input_shape_1;
    input_shape[2] = params.input_shape_2;
    input_shape[3] = params.input_shape_3;
    input_shape[4] = params.input_shape_4;
    input_shape[5] = params.input_shape_5;

    var start: array<u32, 6>;
    start[0] = params.start_0;
    start[1] = params.start_1;
    start[2] = params.start_2;
    start[3] = params.start_3;
    start[4] = params.start_4;
    start[5] = params.start_5;

    // Output coordinates, shifted back into input space
    var temp = idx;
    var input_idx: u32 = 0u;
    var inside = true;
    for (var d: u32 = 0u; d < params.ndim; d = d + 1u) {
        let coord = temp / output_strides[d];
        temp = temp % output_strides[d];
        if (coord < start[d] || coord - start[d] >= input_shape[d]) {
            inside = false;
        }
        input_idx = input_idx * input_shape[d] + (coord - start[d]);
    }

    if (inside) {
        result[idx] = input[input_idx];
    } else {
        result[idx] = f32(0);
    }
}
`

// padShaderInt32 is padShader for int32 tensors.
const padShaderInt32 = `
@group(0) @binding(0) var<storage, read> input: array<i32>;
@group(0) @binding(1) var<storage, read_write> result: array<i32>;

struct Params {
    ndim: u32,
    total_elements: u32,
    output_strides_0: u32,
    output_strides_1: u32,
    output_strides_2: u32,
    output_strides_3: u32,
    output_strides_4: u32,
    output_strides_5: u32,
    input_shape_0: u32,
    input_shape_1: u32,
    input_shape_2: u32,
    input_shape_3: u32,
    input_shape_4: u32,
    input_shape_5: u32,
    start_0: u32,
    start_1: u32,
    start_2: u32,
    start_3: u32,
    start_4: u32,
    start_5: u32,
}
@group(0) @binding(2) var<uniform> params: Params;

@compute @workgroup_size(256)
fn main(@builtin(global_invocation_id) global_id: vec3<u32>) {
    let idx = global_id.x;
    if (idx >= params.total_elements) {
        return;
    }

    var output_strides: array<u32, 6>;
    output_strides[0] = params.output_strides_0;
    output_strides[1] = params.output_strides_1;
    output_strides[2] = params.output_strides_2;
    output_strides[3] = params.output_strides_3;
    output_strides[4] = params.output_strides_4;
    output_strides[5] = params.output_strides_5;

    var input_shape: array<u32, 6>;
    input_shape[0] = params.input_shape_0;
    input_shape[1] = params.input_shape_1;
    input_shape[2] = params.input_shape_2;
    input_shape[3] = params.input_shape_3;
    input_shape[4] = params.input_shape_4;
    input_shape[5] = params.input_shape_5;

    var start: array<u32, 6>;
    start[0] = params.start_0;
    start[1] = params.start_1;
    start[2] = params.start_2;
    start[3] = params.start_3;
    start[4] = params.start_4;
    start[5] = params.start_5;

    // Output coordinates, shifted back into input space
    var temp = idx;
    var input_idx: u32 = 0u;
    var inside = true;
    for (var d: u32 = 0u; d < params.ndim; d = d + 1u) {
        let coord = temp / output_strides[d];
        temp = temp % output_strides[d];
        if (coord < start[d] || coord - start[d] >= input_shape[d]) {
            inside = false;
        }
        input_idx = input_idx * input_shape[d] + (coord - start[d]);
    }

    if (inside) {
        result[idx] = input[input_idx];
    } else {
        result[idx] = i32(0);
    }
}
`
